package main

import (
	"log"
	"net/http"

	"github.com/natsumeaurlia/projectboard/config"
	"github.com/natsumeaurlia/projectboard/internal/board/domain"
	"github.com/natsumeaurlia/projectboard/internal/board/presenter"
	"github.com/natsumeaurlia/projectboard/internal/board/service"
	"github.com/natsumeaurlia/projectboard/internal/board/store"
	"github.com/natsumeaurlia/projectboard/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	st := store.New()
	svc := service.New(st, service.FormLimits{
		TitleMinLen:       cfg.Board.TitleMinLen,
		TitleMaxLen:       cfg.Board.TitleMaxLen,
		DescriptionMinLen: cfg.Board.DescriptionMinLen,
		MandayMax:         cfg.Board.MandayMax,
	})

	// One presenter per bucket; both subscribe to the same store, so every
	// mutation re-renders both lists.
	active := presenter.New(st, domain.StatusActive)
	finished := presenter.New(st, domain.StatusFinished)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  "projectboard",
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		StaticDir:    cfg.Server.StaticDir,
		Store:        st,
		Service:      svc,
		Active:       active,
		Finished:     finished,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, r))
}
