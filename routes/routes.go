package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"booking-api/controllers"
	"booking-api/middleware"
	"booking-api/utils"
)

const roomsCacheKey = "cache:rooms"

func roomsCacheTTL() time.Duration {
	raw := utils.EnvOrDefault("ROOMS_CACHE_TTL", "30")
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}

// SetupRouter wires the HTTP surface. rdb may be nil; the room-listing cache
// then degrades to a pass-through.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	ac *controllers.AvailabilityController,
	rdb *redis.Client,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	// The original surface allows any origin, method and header.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", "Location"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ttl := roomsCacheTTL()

	r.GET("/rooms", middleware.Cache(rdb, roomsCacheKey, ttl), rc.GetRooms)
	r.GET("/rooms/:id", rc.GetRoom)

	roomWrites := r.Group("/rooms", middleware.Invalidate(rdb, roomsCacheKey))
	{
		roomWrites.POST("", rc.CreateRoom)
		roomWrites.PUT("/:id", rc.UpdateRoom)
		roomWrites.DELETE("/:id", rc.DeleteRoom)
	}

	r.POST("/get-rooms", ac.FindRoom)

	r.GET("/booking", bc.GetBookings)
	r.POST("/booking", bc.CreateBooking)
	r.PUT("/booking", bc.UpdateBookingStatus)

	return r
}
