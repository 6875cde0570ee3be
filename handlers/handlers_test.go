package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trainpay/models"
	"trainpay/store/memory"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := memory.New()
	router := gin.New()
	New(st, zap.NewNop().Sugar()).RegisterRoutes(router.Group("/api"))
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}

func seedWorld(t *testing.T, router *gin.Engine) {
	t.Helper()

	for _, station := range []models.CreateStationRequest{
		{StationID: 2, StationName: "North"},
		{StationID: 5, StationName: "South"},
	} {
		if w := doJSON(t, router, http.MethodPost, "/api/stations", station); w.Code != http.StatusCreated {
			t.Fatalf("seeding station: status %d: %s", w.Code, w.Body.String())
		}
	}

	train := models.CreateTrainRequest{
		TrainID:   7,
		TrainName: "Express",
		Capacity:  400,
		Stops: []models.StopInput{
			{StationID: 2, ArrivalTime: "09:20", DepartureTime: "09:30", Fare: 30},
			{StationID: 5, ArrivalTime: "10:20", DepartureTime: "10:30", Fare: 30},
		},
	}
	if w := doJSON(t, router, http.MethodPost, "/api/trains", train); w.Code != http.StatusCreated {
		t.Fatalf("seeding train: status %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateUserEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users", models.CreateUserRequest{UserName: "alice", Balance: 150})
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201: %s", w.Code, w.Body.String())
	}

	var user models.User
	decode(t, w, &user)
	if user.UserID != 1 || user.UserName != "alice" || user.Balance != 150 {
		t.Errorf("got %+v", user)
	}
}

func TestCreateTrainDerivesServiceWindow(t *testing.T) {
	router, _ := newTestRouter(t)
	seedWorld(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/trains", models.CreateTrainRequest{
		TrainID:   8,
		TrainName: "Night",
		Stops: []models.StopInput{
			{StationID: 2, ArrivalTime: "21:20", DepartureTime: "21:30"},
			{StationID: 5, ArrivalTime: "23:20", DepartureTime: "23:30"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d: %s", w.Code, w.Body.String())
	}

	var train models.Train
	decode(t, w, &train)
	if train.ServiceStart != "21:30" || train.ServiceEnds != "23:20" || train.NumStations != 2 {
		t.Errorf("derived fields wrong: %+v", train)
	}
}

func TestTrainsAtStationEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	seedWorld(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/stations/2/trains", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		StationID int64                 `json:"station_id"`
		Trains    []models.StationTrain `json:"trains"`
	}
	decode(t, w, &resp)
	if resp.StationID != 2 || len(resp.Trains) != 1 || resp.Trains[0].TrainID != 7 {
		t.Errorf("got %+v", resp)
	}

	if w := doJSON(t, router, http.MethodGet, "/api/stations/99/trains", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown station: got %d, want 404", w.Code)
	}
}

func TestWalletEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/api/users", models.CreateUserRequest{UserName: "alice", Balance: 50})

	tests := []struct {
		name     string
		path     string
		recharge int64
		wantCode int
	}{
		{"MinRecharge", "/api/wallets/1", 100, http.StatusOK},
		{"MaxRecharge", "/api/wallets/1", 10000, http.StatusOK},
		{"BelowMin", "/api/wallets/1", 99, http.StatusBadRequest},
		{"AboveMax", "/api/wallets/1", 10001, http.StatusBadRequest},
		{"UnknownWallet", "/api/wallets/42", 500, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPut, tt.path, models.TopUpRequest{Recharge: tt.recharge})
			if w.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}

	w := doJSON(t, router, http.MethodGet, "/api/wallets/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", w.Code, w.Body.String())
	}
	var view models.WalletView
	decode(t, w, &view)
	// 50 + 100 + 10000 from the accepted recharges above.
	if view.Balance != 10150 {
		t.Errorf("balance: got %d, want 10150", view.Balance)
	}
	if view.WalletUser.UserName != "alice" {
		t.Errorf("wallet_user: got %+v", view.WalletUser)
	}
}

func TestPurchaseTicketEndpoint(t *testing.T) {
	router, st := newTestRouter(t)
	seedWorld(t, router)
	doJSON(t, router, http.MethodPost, "/api/users", models.CreateUserRequest{UserName: "alice", Balance: 150})

	w := doJSON(t, router, http.MethodPost, "/api/tickets", models.PurchaseRequest{
		WalletID:    1,
		TimeAfter:   "09:00",
		StationFrom: 2,
		StationTo:   5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp models.PurchaseResponse
	decode(t, w, &resp)
	if resp.TicketID != 1 || resp.Balance != 120 || resp.WalletID != 1 {
		t.Errorf("got %+v", resp)
	}
	if len(resp.Stations) != 2 {
		t.Errorf("stations: got %d, want 2", len(resp.Stations))
	}

	user, err := st.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("reading user: %v", err)
	}
	if user.Balance != 120 {
		t.Errorf("persisted balance: got %d, want 120", user.Balance)
	}
}

func TestPurchaseTicketFailures(t *testing.T) {
	router, _ := newTestRouter(t)
	seedWorld(t, router)
	doJSON(t, router, http.MethodPost, "/api/users", models.CreateUserRequest{UserName: "poor", Balance: 10})

	tests := []struct {
		name     string
		req      models.PurchaseRequest
		wantCode int
		wantMsg  string
	}{
		{
			name:     "MissingParameters",
			req:      models.PurchaseRequest{WalletID: 1, StationFrom: 2, StationTo: 5},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Missing required parameters",
		},
		{
			name:     "InsufficientFunds",
			req:      models.PurchaseRequest{WalletID: 1, TimeAfter: "09:00", StationFrom: 2, StationTo: 5},
			wantCode: http.StatusPaymentRequired,
			wantMsg:  "Recharge amount: 20 to purchase the ticket",
		},
		{
			name:     "NoServiceAvailable",
			req:      models.PurchaseRequest{WalletID: 1, TimeAfter: "23:00", StationFrom: 1, StationTo: 1},
			wantCode: http.StatusForbidden,
			wantMsg:  "No ticket available for station: 1 to station: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/tickets", tt.req)
			if w.Code != tt.wantCode {
				t.Fatalf("status: got %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
			var body struct {
				Message string `json:"message"`
			}
			decode(t, w, &body)
			if body.Message != tt.wantMsg {
				t.Errorf("message: got %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}
