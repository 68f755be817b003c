package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"opening_quiz/config"
	"opening_quiz/internal/model"
	"opening_quiz/internal/service/quizService"
	"opening_quiz/utils"
)

type QuizService interface {
	SamplePairs(ctx context.Context, count int, seed *int64) ([]model.QuizPair, error)
	PairsAvailable() int
}

type Controller struct {
	cfg         *config.Config
	quizService QuizService
}

func NewController(cfg *config.Config, quizService QuizService) *Controller {
	return &Controller{cfg: cfg, quizService: quizService}
}

type quizResponse struct {
	Pairs []model.QuizPair `json:"pairs"`
}

type healthResponse struct {
	Status         string `json:"status"`
	PairsAvailable int    `json:"pairs_available"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (ctrl *Controller) GetQuiz(w http.ResponseWriter, r *http.Request) {
	op := "Controller.GetQuiz"
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	pairs := 10
	if raw := r.URL.Query().Get("pairs"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalidPairsMsg})
			return
		}
		pairs = v
	}

	var seed *int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// нечисловой seed отдает ту же 400, что и кривой pairs
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalidPairsMsg})
			return
		}
		seed = &v
	}

	quizPairs, err := ctrl.quizService.SamplePairs(ctx, pairs, seed)
	if err != nil {
		if errors.Is(err, quizService.ErrNoPairsAvailable) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: noPairsMsg})
			return
		}
		slog.Error("got error from quizService.SamplePairs", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: internalErrMsg})
		return
	}

	writeJSON(w, http.StatusOK, quizResponse{Pairs: quizPairs})
}

func (ctrl *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:         statusOkMsg,
		PairsAvailable: ctrl.quizService.PairsAvailable(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response failed", slog.String("err", err.Error()))
	}
}
