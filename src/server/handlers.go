package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/helper"
	"github.com/BielosX/wombat/pokedex/src/httpreq"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultLimit  = 20
	defaultOffset = 0
)

type typeBadge struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type detailView struct {
	helper.PokemonDetail
	Image      string         `json:"image"`
	HeightText string         `json:"heightText"`
	WeightText string         `json:"weightText"`
	TypeBadges []typeBadge    `json:"typeBadges"`
	Card       helper.Pokemon `json:"card"`
}

type listView struct {
	Limit   int32            `json:"limit"`
	Offset  int32            `json:"offset"`
	Count   int32            `json:"count"`
	Results []helper.Pokemon `json:"results"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt32(r, "limit", defaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := queryInt32(r, "offset", defaultOffset)
	if err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	result, err := s.client.ListPokemons(r.Context(), limit, offset)
	if err != nil {
		s.upstreamFailure(w, r, err)
		return
	}
	cards, err := helper.ToCards(result)
	if err != nil {
		s.sugar.Errorw("Failed to map listing", "requestId", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, http.StatusBadGateway, "upstream listing could not be mapped")
		return
	}
	writeJSON(w, http.StatusOK, listView{Limit: limit, Offset: offset, Count: result.Count, Results: cards})
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "nameOrId")
	if unescaped, err := url.PathUnescape(param); err == nil {
		param = unescaped
	}
	nameOrId := strings.ToLower(strings.TrimSpace(param))
	if nameOrId == "" {
		writeError(w, http.StatusBadRequest, "name or id is required")
		return
	}

	// Escaped so "?", "#" or "/" in the name stay inside the path segment upstream.
	resp, err := s.client.GetPokemon(r.Context(), url.PathEscape(nameOrId))
	if err != nil {
		s.upstreamFailure(w, r, err)
		return
	}
	detail := helper.ToDetail(resp)
	writeJSON(w, http.StatusOK, detailView{
		PokemonDetail: detail,
		Image:         detail.DisplayImage(),
		HeightText:    helper.FormatHeight(detail.Height),
		WeightText:    helper.FormatWeight(detail.Weight),
		TypeBadges:    toBadges(detail.Types),
		Card:          helper.CardFromDetail(detail, s.client.BaseUrl()),
	})
}

func (s *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toBadges(helper.TypeNames()))
}

func toBadges(types []string) []typeBadge {
	badges := make([]typeBadge, 0, len(types))
	for _, name := range types {
		badges = append(badges, typeBadge{Name: name, Color: helper.TypeColor(name)})
	}
	return badges
}

func (s *Server) upstreamFailure(w http.ResponseWriter, r *http.Request, err error) {
	if statusErr, ok := httpreq.AsStatusError(err); ok && statusErr.StatusCode == http.StatusNotFound {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}
	s.sugar.Warnw("Upstream request failed", "requestId", middleware.GetReqID(r.Context()), "path", r.URL.Path)
	writeError(w, http.StatusBadGateway, "upstream request failed")
}

func queryInt32(r *http.Request, key string, fallback int32) (int32, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(value), nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
