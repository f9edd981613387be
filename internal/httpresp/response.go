package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
	Total  int    `json:"total"`
}

type PageResponse[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
	Total  int64  `json:"total"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": data})
}

func Empty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Status: "success",
		Data:   data,
		Total:  len(data),
	})
}

func Page[T any](c *gin.Context, data []T, total int64, page, limit int) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{
		Status: "success",
		Data:   data,
		Total:  total,
		Page:   page,
		Limit:  limit,
	})
}
