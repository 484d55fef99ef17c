package network

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
)

// Websocket serves players on /ws next to whatever else router serves.
type Websocket struct {
	addr   string
	router *gin.Engine
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, router *gin.Engine) Websocket {
	return Websocket{addr: addr, router: router}
}

func (w Websocket) Serve() error {
	w.router.GET("/ws", serveWs)
	log.Infof("Websocket server listening on %s\n", w.addr)
	return w.router.Run(w.addr)
}

func serveWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error(err)
		return
	}
	if err := handle(protocol.NewWebsocketReadWriteCloser(conn)); err != nil {
		log.Error(err)
	}
}
