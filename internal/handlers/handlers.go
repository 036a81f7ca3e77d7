package handlers

import (
	v1 "github.com/kaplat/book-server/api/v1"
	"github.com/kaplat/book-server/internal/services"
)

type Handler struct {
	bookSrv  *services.BookService
	levelSrv *services.LogLevelService
}

func New(bookSrv *services.BookService, levelSrv *services.LogLevelService) *Handler {
	return &Handler{
		bookSrv:  bookSrv,
		levelSrv: levelSrv,
	}
}

var _ v1.ServerInterface = (*Handler)(nil)
