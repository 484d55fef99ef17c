// Package service serves read-only views of rooms and game results over HTTP.
package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ratel-online/deal/database"
	"github.com/ratel-online/deal/record"
)

type handler struct {
	recorder record.Recorder
}

func NewRouter(recorder record.Recorder) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	h := handler{recorder: recorder}
	r.GET("/health", h.health)
	api := r.Group("/rooms")
	{
		api.GET("", h.getRooms)
		api.GET("/:id", h.getRoom)
	}
	r.GET("/stats/:name", h.getStats)
	r.GET("/results", h.getResults)
	return r
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "ok",
		"status_code": http.StatusOK,
		"data":        data,
	})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message":     message,
		"status_code": code,
	})
}

func (h handler) health(c *gin.Context) {
	ok(c, gin.H{"rooms": len(database.GetRooms())})
}

func (h handler) getRooms(c *gin.Context) {
	list := make([]database.RoomInfo, 0)
	for _, room := range database.GetRooms() {
		room.Lock()
		list = append(list, room.Model())
		room.Unlock()
	}
	ok(c, list)
}

func (h handler) getRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid room id")
		return
	}
	room := database.GetRoom(id)
	if room == nil {
		fail(c, http.StatusNotFound, "room not found")
		return
	}
	room.Lock()
	info := room.Model()
	room.Unlock()
	ok(c, info)
}

func (h handler) getStats(c *gin.Context) {
	stats, err := h.recorder.Stats(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, stats)
}

func (h handler) getResults(c *gin.Context) {
	limit := 20
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			fail(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	results, err := h.recorder.Recent(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, results)
}
