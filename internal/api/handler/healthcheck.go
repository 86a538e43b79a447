package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type healthcheckResponse struct {
	Status     string    `json:"status"`
	DataSource string    `json:"data_source"`
	Time       time.Time `json:"time"`
}

func HealthcheckHandler(dataSource string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(healthcheckResponse{
			Status:     "ok",
			DataSource: dataSource,
			Time:       time.Now().UTC(),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
