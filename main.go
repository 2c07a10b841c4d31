// Package main RentaBook API.
//
// @title           RentaBook API
// @version         1.0
// @description     Book marketplace (announcements, rents, sales, trades, chats).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rentabook/app/echoServer"
	addressctrl "rentabook/app/echoServer/controller/address"
	announcementctrl "rentabook/app/echoServer/controller/announcement"
	authctrl "rentabook/app/echoServer/controller/auth"
	chatctrl "rentabook/app/echoServer/controller/chat"
	imagectrl "rentabook/app/echoServer/controller/image"
	rentctrl "rentabook/app/echoServer/controller/rent"
	salectrl "rentabook/app/echoServer/controller/sale"
	tradectrl "rentabook/app/echoServer/controller/trade"
	userctrl "rentabook/app/echoServer/controller/user"
	"rentabook/app/echoServer/validation"
	"rentabook/app/echoServer/ws"
	"rentabook/config"
	addressrepo "rentabook/repository/address"
	announcementrepo "rentabook/repository/announcement"
	chatrepo "rentabook/repository/chat"
	imagerepo "rentabook/repository/image"
	rentrepo "rentabook/repository/rent"
	salerepo "rentabook/repository/sale"
	traderepo "rentabook/repository/trade"
	userrepo "rentabook/repository/user"
	addresssvc "rentabook/service/address"
	announcementsvc "rentabook/service/announcement"
	authsvc "rentabook/service/auth"
	chatsvc "rentabook/service/chat"
	imagesvc "rentabook/service/image"
	rentsvc "rentabook/service/rent"
	salesvc "rentabook/service/sale"
	tradesvc "rentabook/service/trade"
	usersvc "rentabook/service/user"
	booksutil "rentabook/util/books"
	"rentabook/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	var log *slog.Logger
	if cfg.Env == "dev" {
		log = slog.New(tint.NewHandler(os.Stdout, nil))
	} else {
		log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close(ctx)

	// repos
	ur := userrepo.New(db)
	ar := announcementrepo.New(db)
	rr := rentrepo.New(db)
	sr := salerepo.New(db)
	tr := traderepo.New(db)
	cr := chatrepo.New(db)
	dr := addressrepo.New(db)
	ir, err := imagerepo.New(db)
	if err != nil {
		log.Error("gridfs bucket init failed", "err", err)
		os.Exit(1)
	}

	// websocket hub
	hub := ws.NewHub()
	go hub.Run()

	// services
	as := authsvc.New(ur, cfg.JWTSecret, cfg.JWTTTLHours)
	us := usersvc.New(ur, ir)
	ans := announcementsvc.New(ar, ur, dr, ir)
	rs := rentsvc.New(ar, rr, ur, dr, cr)
	ss := salesvc.New(ar, sr, ur, dr)
	ts := tradesvc.New(ar, tr, ur, dr, cr)
	cs := chatsvc.New(cr, ur, hub)
	is := imagesvc.New(ir)
	ads := addresssvc.New(dr, ur)

	books := booksutil.NewClient(cfg.GoogleBooksKey)

	// controllers
	authC := &authctrl.Controller{Svc: as, Log: log}
	userC := &userctrl.Controller{Svc: us, Books: books, Log: log}
	annC := &announcementctrl.Controller{Svc: ans, Log: log}
	rentC := &rentctrl.Controller{Svc: rs, Log: log}
	saleC := &salectrl.Controller{Svc: ss, Log: log}
	tradeC := &tradectrl.Controller{Svc: ts, Log: log}
	chatC := &chatctrl.Controller{Svc: cs, Hub: hub, Log: log}
	imageC := &imagectrl.Controller{Svc: is, Log: log}
	addrC := &addressctrl.Controller{Svc: ads, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()
	e.HTTPErrorHandler = echoServer.ErrorHandler(log)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:         authC,
		User:         userC,
		Announcement: annC,
		Rent:         rentC,
		Sale:         saleC,
		Trade:        tradeC,
		Chat:         chatC,
		Image:        imageC,
		Address:      addrC,

		JWTSecret: cfg.JWTSecret,
		Users:     ur,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
