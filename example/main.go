// Command example runs a small demo service showing errkit wired end to end:
// configuration, logging, a translation registry with a custom kind
// hierarchy, validation, and the gin adapter.
//
//	go run ./example
//	curl localhost:8080/posts/42
//	curl localhost:8080/posts/7
//	curl -XPOST localhost:8080/posts -d '{"title":""}'
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/errkit/config"
	"github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/ginerr"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/observability"
	"github.com/kbukum/errkit/translate"
	"github.com/kbukum/errkit/validation"
)

type createPostReq struct {
	Title string `json:"title" validate:"required,min=3"`
	Body  string `json:"body" validate:"required"`
}

func main() {
	cfg := config.ServiceConfig{Name: "errkit-example"}
	if err := config.LoadConfig(cfg.Name, &cfg); err != nil {
		panic(err)
	}
	cfg.Name = "errkit-example"
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	log := logger.New(&cfg.Logging, cfg.Name)

	reg := translate.NewBuilder().
		RegisterDefaults().
		Register("post.archived", http.StatusGone).
		Derive("post.archived.legal_hold", "post.archived").
		FromConfig(cfg.Translation).
		WithLogger(log).
		WithHook(observability.Hook()).
		MustBuild()

	r := gin.New()
	r.Use(ginerr.RequestID(), ginerr.Recovery(reg), ginerr.ErrorHandler(reg))

	r.GET("/posts/:id", func(c *gin.Context) {
		switch id := c.Param("id"); id {
		case "42":
			c.JSON(http.StatusOK, gin.H{"id": id, "title": "Hello, errkit"})
		case "13":
			c.Error(errors.New("post.archived.legal_hold", "post 13 is under legal hold"))
		default:
			c.Error(errors.Newf(errors.KindNotFound, "post %s not found", id))
		}
	})

	r.POST("/posts", func(c *gin.Context) {
		var req createPostReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(errors.Validation("request body is not valid JSON").WithCause(err))
			return
		}
		if err := validation.Validate(req); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"title": req.Title})
	})

	r.GET("/panic", func(c *gin.Context) {
		panic("demonstration panic")
	})

	log.Info("example listening", logger.Fields("addr", ":8080"))
	if err := r.Run(":8080"); err != nil {
		log.Error("server stopped", logger.ErrorFields("run", err))
	}
}
