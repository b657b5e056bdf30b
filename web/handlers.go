package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/duanerilli/NFL-Pool-Backend/controller"
	"github.com/duanerilli/NFL-Pool-Backend/db"
	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps the db sentinel errors onto response codes. Anything
// unrecognized is a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrTeamNotFound):
		render.JSON(w, http.StatusNotFound, errorResponse{Error: "Unknown team code"})
	case errors.Is(err, db.ErrGameNotFound):
		render.JSON(w, http.StatusNotFound, errorResponse{Error: "Game not found for this week/team (or already started)."})
	case errors.Is(err, db.ErrUserNotFound):
		render.JSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
	case errors.Is(err, db.ErrPickNotFound):
		render.JSON(w, http.StatusNotFound, errorResponse{Error: "Pick not found"})
	case errors.Is(err, db.ErrDuplicatePick):
		render.JSON(w, http.StatusConflict, errorResponse{Error: "A pick already exists for this week"})
	default:
		render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func parseUserID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		return uuid.Nil, errors.New("user_id must be a UUID")
	}
	return id, nil
}

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func currentWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phase, week, err := ctrl.ResolveCurrentWeek(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"phase": phase,
			"week":  week,
			"label": model.WeekLabel(phase, week),
		})
	}
}

func gamesForWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing week: %v", err)})
			return
		}

		games, err := ctrl.ListGamesForWeek(r.Context(), week, 0)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func gamesForYearWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing year: %v", err)})
			return
		}
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing week: %v", err)})
			return
		}

		games, err := ctrl.ListGamesForWeek(r.Context(), week, year)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func leaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lb, err := ctrl.GetLeaderboard(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, lb)
	}
}

func createUserHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing request: %v", err)})
			return
		}
		if req.Name == "" {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "name must not be empty"})
			return
		}

		u, err := ctrl.CreateUser(r.Context(), req.Name)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, u)
	}
}

func listUsersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := ctrl.ListUsers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, users)
	}
}

func submitPickHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID string `json:"user_id"`
			Week   string `json:"week"`
			Team   string `json:"team"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing request: %v", err)})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "user_id must be a UUID"})
			return
		}
		phase, week, err := model.ParseWeekLabel(req.Week)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		detail, err := ctrl.SubmitPick(r.Context(), userID, phase, week, req.Team)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, detail)
	}
}

func pickHistoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseUserID(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		history, err := ctrl.GetPickHistory(r.Context(), userID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, history)
	}
}

func availableTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseUserID(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var phase model.Phase
		if p := r.URL.Query().Get("phase"); p != "" {
			phase, err = model.ParsePhase(p)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
		}
		week := 0
		if wk := r.URL.Query().Get("week"); wk != "" {
			week, err = strconv.Atoi(wk)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing week: %v", err)})
				return
			}
		}
		ignoreLock := r.URL.Query().Get("ignoreLock") == "1"

		phase, week, teams, err := ctrl.AvailableTeams(r.Context(), userID, phase, week, ignoreLock)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"phase": phase,
			"week":  week,
			"teams": teams,
		})
	}
}

// adminWeekRequest is the body for both /admin/sync and /admin/settle: a
// season year and a week label like "REG3".
type adminWeekRequest struct {
	Season int    `json:"season"`
	Week   string `json:"week"`
}

func parseAdminWeekRequest(r *http.Request) (int, model.Phase, int, error) {
	var req adminWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, "", 0, fmt.Errorf("error parsing request: %v", err)
	}
	if req.Season < 2000 {
		return 0, "", 0, fmt.Errorf("invalid season: %d", req.Season)
	}
	phase, week, err := model.ParseWeekLabel(req.Week)
	if err != nil {
		return 0, "", 0, err
	}
	return req.Season, phase, week, nil
}

func syncHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, phase, week, err := parseAdminWeekRequest(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		count, err := ctrl.SyncGames(r.Context(), season, phase, week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"synced": count})
	}
}

func settleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, phase, week, err := parseAdminWeekRequest(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		settled, err := ctrl.SettlePicks(r.Context(), season, phase, week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"settled": settled})
	}
}
