package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	addressctrl "rentabook/app/echoServer/controller/address"
	announcementctrl "rentabook/app/echoServer/controller/announcement"
	authctrl "rentabook/app/echoServer/controller/auth"
	chatctrl "rentabook/app/echoServer/controller/chat"
	imagectrl "rentabook/app/echoServer/controller/image"
	rentctrl "rentabook/app/echoServer/controller/rent"
	salectrl "rentabook/app/echoServer/controller/sale"
	tradectrl "rentabook/app/echoServer/controller/trade"
	userctrl "rentabook/app/echoServer/controller/user"
)

type C struct {
	Auth         *authctrl.Controller
	User         *userctrl.Controller
	Announcement *announcementctrl.Controller
	Rent         *rentctrl.Controller
	Sale         *salectrl.Controller
	Trade        *tradectrl.Controller
	Chat         *chatctrl.Controller
	Image        *imagectrl.Controller
	Address      *addressctrl.Controller

	JWTSecret string
	Users     UserLoader
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/register", c.Auth.Register)
	e.POST("/login", c.Auth.Login)
	e.POST("/recovery/:email", c.Auth.RecoveryStart)
	e.PUT("/recovery", c.Auth.RecoveryReset)

	e.GET("/public/books/:id", c.User.Book)
	e.GET("/public/user/:id", c.User.Public)
	e.GET("/public/image/:id", c.Image.Get)
	e.GET("/public/address/:id", c.Address.Public)
	e.GET("/announcements/find", c.Announcement.Find)

	// Everything else needs a valid, current token.
	auth := e.Group("")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))
	auth.Use(TokenVersionCheck(c.Users))

	auth.GET("/users/me", c.User.Me)
	auth.PUT("/users/me/image", c.User.SetImage)

	auth.POST("/announcement/new", c.Announcement.Create)
	auth.POST("/announcement/rent", c.Rent.Create)
	auth.GET("/announcements/my", c.Announcement.My)
	auth.GET("/announcements/:id", c.Announcement.Detail)

	auth.PUT("/rents/:id/accept", c.Rent.Accept)
	auth.PUT("/rents/:id/undo", c.Rent.Undo)
	auth.GET("/rents/my", c.Rent.My)

	auth.POST("/sales/create", c.Sale.Create)
	auth.PUT("/sales/:id/accept", c.Sale.Accept)
	auth.PUT("/sales/:id/undo", c.Sale.Undo)
	auth.GET("/sales/my", c.Sale.My)

	auth.POST("/trades/create", c.Trade.Create)
	auth.PUT("/trades/:id/accept", c.Trade.Accept)
	auth.PUT("/trades/:id/undo", c.Trade.Undo)
	auth.GET("/trades/my", c.Trade.My)

	auth.GET("/chats/my", c.Chat.My)
	auth.GET("/chats/:id/messages", c.Chat.Messages)
	auth.POST("/chat_messages/new", c.Chat.Send)

	// Websocket handshakes cannot carry an Authorization header from a
	// browser, so the subscription route takes the token itself.
	e.GET("/ws/chats/:id", c.Chat.Subscribe, TokenAuth(c.JWTSecret, c.Users))

	auth.POST("/image/new", c.Image.Upload)
	auth.POST("/address/new", c.Address.Create)
}
