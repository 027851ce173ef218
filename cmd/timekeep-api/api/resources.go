package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/timekeep/timekeep-go/pkg/timer"
)

// maxBody bounds request bodies accepted by the API.
const maxBody = 1 << 20

// ResourceAPI serves one timer collection.
type ResourceAPI struct {
	store      *Store
	collection string
}

// NewResourceAPI creates a handler for collection backed by store.
func NewResourceAPI(store *Store, collection string) *ResourceAPI {
	return &ResourceAPI{
		store:      store,
		collection: collection,
	}
}

// Path returns the collection route, e.g. "/timers".
func (a *ResourceAPI) Path() string {
	return "/" + a.collection
}

// Prefix returns the item route prefix, e.g. "/timers/".
func (a *ResourceAPI) Prefix() string {
	return a.Path() + "/"
}

// HandleCollection handles GET and POST /{collection}.
func (a *ResourceAPI) HandleCollection(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		a.handleList(w, req)
	case http.MethodPost:
		a.handleCreate(w, req)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleItem handles GET, PUT and DELETE /{collection}/{id}.
func (a *ResourceAPI) HandleItem(w http.ResponseWriter, req *http.Request) {
	id := strings.TrimPrefix(req.URL.Path, a.Prefix())
	if id == "" || strings.Contains(id, "/") {
		writeJSONError(w, http.StatusNotFound, "Not found", req.URL.Path)
		return
	}

	switch req.Method {
	case http.MethodGet:
		a.handleGet(w, id)
	case http.MethodPut:
		a.handleReplace(w, req, id)
	case http.MethodDelete:
		a.handleDelete(w, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *ResourceAPI) handleList(w http.ResponseWriter, _ *http.Request) {
	ts, err := a.store.List(a.collection)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list "+a.collection, err.Error())
		return
	}
	writeJSONResponse(w, http.StatusOK, ts)
}

func (a *ResourceAPI) handleCreate(w http.ResponseWriter, req *http.Request) {
	t, ok := readTimer(w, req)
	if !ok {
		return
	}

	created, err := a.store.Create(a.collection, t)
	if errors.Is(err, ErrConflict) {
		writeJSONError(w, http.StatusConflict, "Resource already exists", err.Error())
		return
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to create resource", err.Error())
		return
	}

	log.Printf("[%s] created %s", a.collection, timer.PathID(created.ID()))
	writeJSONResponse(w, http.StatusCreated, created)
}

func (a *ResourceAPI) handleGet(w http.ResponseWriter, id string) {
	t, err := a.store.Get(a.collection, id)
	if err != nil {
		a.writeStoreError(w, id, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, t)
}

func (a *ResourceAPI) handleReplace(w http.ResponseWriter, req *http.Request, id string) {
	t, ok := readTimer(w, req)
	if !ok {
		return
	}

	updated, err := a.store.Replace(a.collection, id, t)
	if err != nil {
		a.writeStoreError(w, id, err)
		return
	}

	log.Printf("[%s] updated %s", a.collection, id)
	writeJSONResponse(w, http.StatusOK, updated)
}

func (a *ResourceAPI) handleDelete(w http.ResponseWriter, id string) {
	deleted, err := a.store.Delete(a.collection, id)
	if err != nil {
		a.writeStoreError(w, id, err)
		return
	}

	log.Printf("[%s] deleted %s", a.collection, id)
	writeJSONResponse(w, http.StatusOK, deleted)
}

func (a *ResourceAPI) writeStoreError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "Not found", a.collection+"/"+id)
		return
	}
	writeJSONError(w, http.StatusInternalServerError, "Storage error", err.Error())
}

// readTimer decodes the request body as a timer object. It writes a 400
// response and returns false when the body is not a JSON object.
func readTimer(w http.ResponseWriter, req *http.Request) (timer.Timer, bool) {
	data, err := io.ReadAll(io.LimitReader(req.Body, maxBody))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return nil, false
	}

	t, err := timer.Decode(data)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return nil, false
	}
	return t, true
}
