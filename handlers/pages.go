package handlers

import (
	"log"
	"net/http"

	"github.com/AliAlSubhi98/CodelineChallenge/db"
	"github.com/AliAlSubhi98/CodelineChallenge/middleware"
	"github.com/gin-gonic/gin"
)

const indexHistoryLimit = 10

// LoginPage renders the login form.
// The page script (login.wasm) handles submission in the browser; the form's
// POST /login action only runs when the script is unavailable.
func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// IndexPage renders the measurement converter with the latest stored results.
func IndexPage(c *gin.Context) {
	data := gin.H{}
	if db.DB != nil {
		results, err := db.ListMeasurementResults(c.Request.Context(), db.DB, indexHistoryLimit)
		if err != nil {
			log.Printf("[DB] %s %v", middleware.GetRequestID(c), err)
		}
		data["results"] = results
	}
	c.HTML(http.StatusOK, "index.html", data)
}
