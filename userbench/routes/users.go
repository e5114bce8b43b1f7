package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"userbench/userbench/controllers"
	"userbench/userbench/types"
	httputils "userbench/userbench/utils/http"
	"userbench/userbench/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// generic wrapper to reduce boilerplate; errors become {"message": ...}
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			if status >= http.StatusInternalServerError {
				logging.ErrorLogger.Error("users api handler failed",
					zap.String("path", r.URL.Path), zap.Error(err))
			}
			httputils.WriteJSON(w, status, types.ErrorResponse{Message: err.Error()})
			return
		}
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		httputils.WriteJSON(w, status, res)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, controllers.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, controllers.ErrUserInvalid):
		return http.StatusBadRequest
	case errors.Is(err, controllers.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var errBadID = errors.New("Invalid user ID")

func userID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "user_id"))
	if err != nil {
		return 0, errBadID
	}
	return id, nil
}

// UserRoutes is the reference users API mounted at /api/users.
func UserRoutes(ctrl *controllers.UserController) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		users, err := ctrl.GetAllUsers(r.Context())
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return users, http.StatusOK, nil
	}))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		user, err := ctrl.CreateUser(r.Context(), req)
		if err != nil {
			return nil, statusFor(err), err
		}
		return user, http.StatusCreated, nil
	}))

	r.Get("/{user_id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := userID(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		user, err := ctrl.GetUser(r.Context(), id)
		if err != nil {
			return nil, statusFor(err), err
		}
		return user, http.StatusOK, nil
	}))

	r.Put("/{user_id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := userID(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		var req types.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		user, err := ctrl.UpdateUser(r.Context(), id, req)
		if err != nil {
			return nil, statusFor(err), err
		}
		return user, http.StatusOK, nil
	}))

	r.Delete("/{user_id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := userID(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		if err := ctrl.DeleteUser(r.Context(), id); err != nil {
			return nil, statusFor(err), err
		}
		return nil, http.StatusNoContent, nil
	}))

	return r
}
