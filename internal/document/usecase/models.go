package usecase

import "github.com/shandysiswandi/godocstore/internal/document/entity"

type Document struct {
	ID      entity.ID
	Content []byte
}
