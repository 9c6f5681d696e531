package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"bank-portal.backend/internal/interfaces/http/handlers"
	"bank-portal.backend/internal/interfaces/ws"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	adminHandler    *handlers.AdminHandler
	accountHandler  *handlers.AccountHandler
	messageHandler  *handlers.MessageHandler
	loanHandler     *handlers.LoanHandler
	wsTicketHandler *handlers.WSTicketHandler
	wsHandler       *ws.Handler
	requireAuth     gin.HandlerFunc
	requireAdmin    gin.HandlerFunc
	requireApproved gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/admin-login", d.authHandler.AdminLogin)
			auth.GET("/user", d.requireAuth, d.authHandler.GetUser)
			auth.POST("/logout", d.requireAuth, d.authHandler.Logout)
		}

		// Messaging is open to pending users so they can reach support
		messages := api.Group("/messages")
		messages.Use(d.requireAuth)
		{
			messages.GET("", d.messageHandler.List)
			messages.POST("", d.messageHandler.Send)
		}

		// Websocket ticket exchange (session -> short-lived ticket)
		api.GET("/ws/ticket", d.requireAuth, d.wsTicketHandler.Issue)

		// Banking routes require an approved account
		accounts := api.Group("/accounts")
		accounts.Use(d.requireAuth, d.requireApproved)
		{
			accounts.GET("", d.accountHandler.ListAccounts)
		}

		transactions := api.Group("/transactions")
		transactions.Use(d.requireAuth, d.requireApproved)
		{
			transactions.GET("", d.accountHandler.ListTransactions)
		}

		loans := api.Group("/loans")
		loans.Use(d.requireAuth, d.requireApproved)
		{
			loans.GET("", d.loanHandler.List)
			loans.POST("", d.loanHandler.Submit)
		}

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(d.requireAuth, d.requireAdmin)
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/pending-users", d.adminHandler.ListPendingUsers)
			admin.POST("/approve-user/:id", d.adminHandler.ApproveUser)
			admin.POST("/reject-user/:id", d.adminHandler.RejectUser)

			admin.GET("/conversations", d.adminHandler.ListConversations)
			admin.GET("/transactions", d.accountHandler.AdminListTransactions)

			admin.GET("/loans", d.loanHandler.AdminList)
			admin.POST("/loans/:id/status", d.loanHandler.SetStatus)
		}
	}

	// Websocket endpoint, authenticated by ticket rather than cookie
	r.GET("/ws", d.wsHandler.Serve)
}

func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin, allowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func originAllowed(origin string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if origin == a {
			return true
		}
	}
	return false
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "bank-portal-backend",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
