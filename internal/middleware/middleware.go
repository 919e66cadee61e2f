package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	CtxRequestIDKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or assigns a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxRequestIDKey)
}

// Logger writes one line per request.
func Logger(logger *log.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Printf("[http] %s %s %d %s rid=%s",
			c.Request.Method,
			c.Request.URL.RequestURI(),
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
			GetRequestID(c),
		)
	}
}

type brotliWriter struct {
	gin.ResponseWriter
	w *brotli.Writer
}

func (b *brotliWriter) Write(p []byte) (int, error) {
	return b.w.Write(p)
}

func (b *brotliWriter) WriteString(s string) (int, error) {
	return b.w.Write([]byte(s))
}

// Brotli compresses response bodies for clients that accept "br".
// Websocket upgrades pass through untouched.
func Brotli(level int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsBrotli(c.GetHeader("Accept-Encoding")) || isUpgrade(c) {
			c.Next()
			return
		}

		c.Header("Content-Encoding", "br")
		c.Header("Vary", "Accept-Encoding")

		bw := &brotliWriter{ResponseWriter: c.Writer, w: brotli.NewWriterLevel(c.Writer, level)}
		c.Writer = bw
		defer bw.w.Close()

		c.Next()
	}
}

func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		enc, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(strings.TrimSpace(enc), "br") {
			return true
		}
	}
	return false
}

func isUpgrade(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("Upgrade"), "websocket")
}
