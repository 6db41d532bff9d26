package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/samber/mo"

	"guildboard/models"
	"guildboard/services"
)

// Per-operation pagination defaults, kept compatible with the dashboard
// front end.
const (
	defaultMessagesLimit  = 50
	defaultUsersLimit     = 100
	defaultReactionsLimit = 100
	defaultActivityLimit  = 20
)

type errorResponse struct {
	Error string `json:"error"`
}

type serversResponse struct {
	Servers []models.GuildActivity `json:"servers"`
}

type channelsResponse struct {
	Channels []models.ChannelActivity `json:"channels"`
}

type activityResponse struct {
	Activity []models.ActivityEvent `json:"activity"`
}

// DashboardHandler serves the dashboard reporting endpoint. Operations
// are selected by the action query parameter; an unknown action is a 404
// and never touches the store.
type DashboardHandler struct {
	reports     services.ReportsService
	maxPageSize int
}

func NewDashboardHandler(reports services.ReportsService, maxPageSize int) *DashboardHandler {
	return &DashboardHandler{
		reports:     reports,
		maxPageSize: maxPageSize,
	}
}

func (h *DashboardHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering dashboard API endpoints")

	router.HandleFunc("/api", h.HandleAction).Methods("GET")
	log.Printf("✅ GET /api endpoint registered")
}

func (h *DashboardHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	log.Printf("📋 Dashboard action %q requested from %s", action, r.RemoteAddr)

	switch action {
	case "stats":
		h.handleStats(w, r)
	case "messages":
		h.handleMessages(w, r)
	case "users":
		h.handleUsers(w, r)
	case "servers":
		h.handleServers(w, r)
	case "channels":
		h.handleChannels(w, r)
	case "reactions":
		h.handleReactions(w, r)
	case "recent_activity":
		h.handleRecentActivity(w, r)
	case "filter_options":
		h.handleFilterOptions(w, r)
	default:
		log.Printf("❌ Unknown dashboard action: %q", action)
		h.writeJSONError(w, http.StatusNotFound, "unknown action")
	}
}

func (h *DashboardHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.GetStats(r.Context())
	if err != nil {
		log.Printf("❌ Failed to get stats: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, stats)
}

func (h *DashboardHandler) handleMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := models.MessageFilters{
		GuildID:   parseIDFilter(q.Get("guild_id")),
		ChannelID: parseIDFilter(q.Get("channel_id")),
		UserID:    parseIDFilter(q.Get("user_id")),
		Search:    parseTextFilter(q.Get("search")),
	}
	page := h.parsePagination(q, defaultMessagesLimit)

	result, err := h.reports.ListMessages(r.Context(), filters, page)
	if err != nil {
		log.Printf("❌ Failed to list messages: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *DashboardHandler) handleUsers(w http.ResponseWriter, r *http.Request) {
	page := h.parsePagination(r.URL.Query(), defaultUsersLimit)

	result, err := h.reports.ListUsers(r.Context(), page)
	if err != nil {
		log.Printf("❌ Failed to list users: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *DashboardHandler) handleServers(w http.ResponseWriter, r *http.Request) {
	servers, err := h.reports.ListServers(r.Context())
	if err != nil {
		log.Printf("❌ Failed to list servers: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, serversResponse{Servers: servers})
}

func (h *DashboardHandler) handleChannels(w http.ResponseWriter, r *http.Request) {
	guildID := parseIDFilter(r.URL.Query().Get("guild_id"))

	channels, err := h.reports.ListChannels(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to list channels: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, channelsResponse{Channels: channels})
}

func (h *DashboardHandler) handleReactions(w http.ResponseWriter, r *http.Request) {
	page := h.parsePagination(r.URL.Query(), defaultReactionsLimit)

	result, err := h.reports.ListReactions(r.Context(), page)
	if err != nil {
		log.Printf("❌ Failed to list reactions: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *DashboardHandler) handleRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := h.capLimit(parseNonNegative(r.URL.Query().Get("limit"), defaultActivityLimit))

	activity, err := h.reports.GetRecentActivity(r.Context(), limit)
	if err != nil {
		log.Printf("❌ Failed to get recent activity: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, activityResponse{Activity: activity})
}

func (h *DashboardHandler) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.reports.GetFilterOptions(r.Context())
	if err != nil {
		log.Printf("❌ Failed to get filter options: %v", err)
		h.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, options)
}

// parsePagination coerces the limit/offset query parameters: non-numeric
// or negative values fall back to the operation default (limit) or zero
// (offset), and limit is capped server-side.
func (h *DashboardHandler) parsePagination(q url.Values, defaultLimit int) models.PageParams {
	return models.PageParams{
		Limit:  h.capLimit(parseNonNegative(q.Get("limit"), defaultLimit)),
		Offset: parseNonNegative(q.Get("offset"), 0),
	}
}

func (h *DashboardHandler) capLimit(limit int) int {
	if limit > h.maxPageSize {
		return h.maxPageSize
	}
	return limit
}

func parseNonNegative(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// parseIDFilter maps an identifier query parameter to an optional
// predicate. Empty means absent. A non-numeric identifier keeps the
// permissive upstream behavior: it filters on id 0 and silently matches
// nothing instead of erroring.
func parseIDFilter(raw string) mo.Option[int64] {
	if raw == "" {
		return mo.None[int64]()
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return mo.Some[int64](0)
	}
	return mo.Some(id)
}

func parseTextFilter(raw string) mo.Option[string] {
	if raw == "" {
		return mo.None[string]()
	}
	return mo.Some(raw)
}

func (h *DashboardHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}

func (h *DashboardHandler) writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSONResponse(w, statusCode, errorResponse{Error: message})
}
