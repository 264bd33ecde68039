package controllers

import (
	"errors"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"pad/internal/providers"
	"pad/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.PresenceServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.PresenceServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func userIDVar(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["user_id"])
	if err != nil {
		return 0, false
	}
	return id, true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if errors.Is(err, services.ErrUnknownUser) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		ac.logger.Errorf(providers.TypeApp, "Computing %s failed: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) servePerUser(w http.ResponseWriter, r *http.Request, prefix string, compute func(userID int) (any, error)) {
	id, ok := userIDVar(r)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, prefix+":"+strconv.Itoa(id), func() (any, error) {
		return compute(id)
	})
}

func (ac *ApiController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "users", func() (any, error) {
		return ac.service.Users()
	})
}

func (ac *ApiController) GetMonths(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "months", func() (any, error) {
		return ac.service.Months()
	})
}

func (ac *ApiController) GetMeanTimeWeekday(w http.ResponseWriter, r *http.Request) {
	ac.servePerUser(w, r, "mean_time_weekday", func(userID int) (any, error) {
		return ac.service.MeanTimeWeekday(userID)
	})
}

func (ac *ApiController) GetPresenceWeekday(w http.ResponseWriter, r *http.Request) {
	ac.servePerUser(w, r, "presence_weekday", func(userID int) (any, error) {
		return ac.service.PresenceWeekday(userID)
	})
}

func (ac *ApiController) GetPresenceStartEnd(w http.ResponseWriter, r *http.Request) {
	ac.servePerUser(w, r, "presence_start_end", func(userID int) (any, error) {
		return ac.service.PresenceStartEnd(userID)
	})
}

func (ac *ApiController) GetPodium(w http.ResponseWriter, r *http.Request) {
	ac.servePerUser(w, r, "podium", func(userID int) (any, error) {
		return ac.service.Podium(userID)
	})
}

func (ac *ApiController) GetFiveTop(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	month, errM := strconv.Atoi(vars["month"])
	year, errY := strconv.Atoi(vars["year"])
	if errM != nil || errY != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "five_top:"+vars["month"]+":"+vars["year"], func() (any, error) {
		return ac.service.FiveTop(month, year)
	})
}
