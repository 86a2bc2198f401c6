package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DiegoCorrea07/CoreMVC/internal/common"
	"github.com/DiegoCorrea07/CoreMVC/internal/constants"
	"github.com/DiegoCorrea07/CoreMVC/internal/models/dtos"
)

func respondWithSuccess(w http.ResponseWriter, initTime time.Time, message string, data interface{}) {
	resp := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: common.GetResponseTime(initTime),
		Data:         data,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, initTime time.Time, statusCode int, message string) {
	resp := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      message,
		ResponseTime: common.GetResponseTime(initTime),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
