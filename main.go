package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neroguard/neroguard/pkg/engine"
	"github.com/neroguard/neroguard/pkg/storage"
)

// APIRequest is the JSON body accepted by the analyze endpoint.
type APIRequest struct {
	Input string `json:"input"`
}

// maxInputLen bounds accepted input. Length validation belongs to the host,
// not the engine: the engine itself is total over all strings.
const maxInputLen = 2000

var guardEngine *engine.Engine
var historyStore storage.HistoryStore

func main() {
	guardEngine = engine.New()
	historyStore = storage.NewMemoryStore()

	r := gin.Default()
	r.POST("/api/v1/analyze", handleAnalyze)

	log.Println("NeroGuard API listening on :8080")
	r.Run(":8080")
}

func handleAnalyze(c *gin.Context) {
	var req APIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := strings.TrimSpace(req.Input)
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is empty"})
		return
	}
	if len(input) > maxInputLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input exceeds 2000 characters"})
		return
	}

	result := guardEngine.Analyze(input)

	entry := storage.Entry{
		ID:     uuid.NewString(),
		Input:  input,
		Result: result,
	}
	if err := historyStore.Save(entry); err != nil {
		log.Printf("history save failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     entry.ID,
		"result": result,
	})
}
