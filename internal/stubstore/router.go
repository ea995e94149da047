package stubstore

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
)

// Router builds the HTTP surface of the stub store:
//
//	GET    /users?username=&password=
//	POST   /users
//	GET    /jobs?userId=&q=&status=&_sort=dateApplied&_order=asc|desc
//	POST   /jobs
//	GET    /jobs/:id
//	PATCH  /jobs/:id
//	DELETE /jobs/:id
func Router(s *Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/users", func(c *gin.Context) {
		password, checkPassword := c.GetQuery("password")
		c.JSON(http.StatusOK, s.FindUsers(UserFilter{
			Username:      c.Query("username"),
			Password:      password,
			CheckPassword: checkPassword,
		}))
	})

	r.POST("/users", func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, s.CreateUser(body.Username, body.Password))
	})

	r.GET("/jobs", func(c *gin.Context) {
		var filter JobFilter
		if raw := c.Query("userId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
				return
			}
			filter.UserID = id
			filter.HasUserID = true
		}
		filter.Text = c.Query("q")
		filter.Status = c.Query("status")
		filter.Descending = c.Query("_order") != "asc"
		c.JSON(http.StatusOK, s.FindJobs(filter))
	})

	r.POST("/jobs", func(c *gin.Context) {
		var j models.Job
		if err := c.ShouldBindJSON(&j); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		j.ID = 0 // the store assigns identity
		c.JSON(http.StatusCreated, s.CreateJob(j))
	})

	r.GET("/jobs/:id", func(c *gin.Context) {
		id, ok := jobID(c)
		if !ok {
			return
		}
		j, found := s.GetJob(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, j)
	})

	r.PATCH("/jobs/:id", func(c *gin.Context) {
		id, ok := jobID(c)
		if !ok {
			return
		}
		var patch models.JobPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		j, found := s.PatchJob(id, patch)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, j)
	})

	r.DELETE("/jobs/:id", func(c *gin.Context) {
		id, ok := jobID(c)
		if !ok {
			return
		}
		if !s.DeleteJob(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Status(http.StatusOK)
	})

	return r
}

func jobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
