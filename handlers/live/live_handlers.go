package live

import (
	"net/http"
	"time"

	"hypnoraffle/realtime"
	"hypnoraffle/services"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var loadSnapshot = services.CollectionSnapshot

// RegisterRoutes registers the realtime subscription route
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/live/:collection", Subscribe)
}

// Subscribe handles WebSocket subscriptions to a collection
// @Summary Subscribe to a collection
// @Description Upgrade to a WebSocket that receives the collection snapshot, then a new one after every change.
// @Description Collections: participants, sessions, qr_refs, qr_scans.
// @Tags Live
// @Param collection path string true "Collection name"
// @Success 101
// @Failure 404 {object} map[string]string
// @Router /live/{collection} [get]
// @Security PasswordGate
func Subscribe(c *gin.Context) {
	collection := c.Param("collection")
	if !realtime.ValidCollection(collection) {
		response.Error(c, http.StatusNotFound, "Unknown collection")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	// Subscribe before loading so changes committed meanwhile are queued behind the snapshot
	client := realtime.RegisterClient(collection, conn)
	defer realtime.UnregisterClient(client)

	snapshot, err := loadSnapshot(c.Request.Context(), collection)
	if err != nil {
		zap.L().Error("failed to load snapshot", zap.String("collection", collection), zap.Error(err))
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "Failed to load collection"),
			time.Now().Add(time.Second))
		return
	}

	initial := &realtime.Update{
		Collection: collection,
		UpdateType: realtime.UpdateSnapshot,
		Data:       snapshot,
		SentAt:     time.Now(),
	}
	if err := client.Start(initial); err != nil {
		zap.L().Warn("failed to send initial snapshot", zap.String("collection", collection), zap.Error(err))
		return
	}

	// Reads only detect the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("websocket read error", zap.String("collection", collection), zap.Error(err))
			}
			break
		}
	}
}
