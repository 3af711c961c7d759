package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// crudEndpoints is the admin create/update/delete flow shared by the
// catalog resources. A sent image is uploaded before anything is stored,
// and a failed upload fails the request.
type crudEndpoints[T any, PT service.Entity[T]] struct {
	crud     *service.CRUDService[T, PT]
	storage  service.ImageStorage
	folder   string
	name     string
	setImage func(PT, string)
}

// readWithImage returns the JSON payload and a mutation that sets the
// uploaded image URL, if an image was sent.
func (e crudEndpoints[T, PT]) readWithImage(c *gin.Context) ([]byte, func(PT), bool) {
	payload, file, err := readPayload(c, "image")
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}

	url, err := uploadIfPresent(c.Request.Context(), e.storage, e.folder, "image", file)
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return payload, func(entity PT) {
		if url != "" && e.setImage != nil {
			e.setImage(entity, url)
		}
	}, true
}

func (e crudEndpoints[T, PT]) Create(c *gin.Context) {
	payload, mutate, ok := e.readWithImage(c)
	if !ok {
		return
	}
	entity, err := e.crud.Create(c.Request.Context(), payload, mutate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

func (e crudEndpoints[T, PT]) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	payload, mutate, ok := e.readWithImage(c)
	if !ok {
		return
	}
	entity, err := e.crud.Update(c.Request.Context(), id, payload, mutate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (e crudEndpoints[T, PT]) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := e.crud.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": e.name + " removed"})
}
