package memory

import (
	"context"
	"errors"
	"testing"

	"trainpay/models"
	"trainpay/store"
)

func seed(t *testing.T, st *Store) {
	t.Helper()
	ctx := context.Background()

	stations := []models.Station{
		{StationID: 2, StationName: "North"},
		{StationID: 3, StationName: "Central"},
		{StationID: 5, StationName: "South"},
	}
	for i := range stations {
		if err := st.CreateStation(ctx, &stations[i]); err != nil {
			t.Fatalf("seeding station: %v", err)
		}
	}

	err := st.CreateTrain(ctx, &models.Train{TrainID: 1, TrainName: "Express", NumStations: 2}, []models.Stop{
		{StationID: 2, ArrivalTime: "09:20", DepartureTime: "09:30"},
		{StationID: 5, ArrivalTime: "10:20", DepartureTime: "10:30"},
	})
	if err != nil {
		t.Fatalf("seeding train 1: %v", err)
	}
	err = st.CreateTrain(ctx, &models.Train{TrainID: 2, TrainName: "Local", NumStations: 1}, []models.Stop{
		{StationID: 3, ArrivalTime: "07:50", DepartureTime: "08:00"},
	})
	if err != nil {
		t.Fatalf("seeding train 2: %v", err)
	}
}

func TestCreateUserAssignsIDs(t *testing.T) {
	st := New()
	ctx := context.Background()

	a, err := st.CreateUser(ctx, "alice", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := st.CreateUser(ctx, "bob", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.UserID == b.UserID {
		t.Errorf("duplicate user ids: %d", a.UserID)
	}
	if b.UserID != a.UserID+1 {
		t.Errorf("ids not sequential: %d then %d", a.UserID, b.UserID)
	}
}

func TestCreateStationDuplicate(t *testing.T) {
	st := New()
	ctx := context.Background()

	station := &models.Station{StationID: 1, StationName: "North"}
	if err := st.CreateStation(ctx, station); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := st.CreateStation(ctx, station); !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("got %v, want ErrAlreadyExists", err)
	}
}

func TestFindDepartures(t *testing.T) {
	st := New()
	seed(t, st)
	ctx := context.Background()

	tests := []struct {
		name      string
		from, to  int64
		timeAfter string
		want      []models.Departure
	}{
		{
			name: "BothTrainsInRange", from: 2, to: 5, timeAfter: "00:00",
			want: []models.Departure{
				{TrainID: 1, DepartureTime: "09:30"},
				{TrainID: 2, DepartureTime: "08:00"},
			},
		},
		{
			name: "TimeBoundExcludesLocal", from: 2, to: 5, timeAfter: "09:00",
			want: []models.Departure{{TrainID: 1, DepartureTime: "09:30"}},
		},
		{
			name: "InclusiveBoundary", from: 2, to: 5, timeAfter: "09:30",
			want: []models.Departure{{TrainID: 1, DepartureTime: "09:30"}},
		},
		{
			name: "NarrowRange", from: 3, to: 3, timeAfter: "00:00",
			want: []models.Departure{{TrainID: 2, DepartureTime: "08:00"}},
		},
		{name: "NothingMatches", from: 30, to: 40, timeAfter: "00:00", want: []models.Departure{}},
		// The original's BETWEEN semantics: an inverted range matches nothing.
		{name: "InvertedRange", from: 5, to: 2, timeAfter: "00:00", want: []models.Departure{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := st.FindDepartures(ctx, tt.from, tt.to, tt.timeAfter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d departures, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("departure %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStopsByTrainOrdered(t *testing.T) {
	st := New()
	ctx := context.Background()

	// Stops supplied out of departure order come back sorted.
	err := st.CreateTrain(ctx, &models.Train{TrainID: 1, NumStations: 3}, []models.Stop{
		{StationID: 5, ArrivalTime: "10:20", DepartureTime: "10:30"},
		{StationID: 2, ArrivalTime: "09:20", DepartureTime: "09:30"},
		{StationID: 3, ArrivalTime: "09:50", DepartureTime: "10:00"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stops, err := st.StopsByTrain(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].DepartureTime < stops[i-1].DepartureTime {
			t.Errorf("stops out of order: %q before %q", stops[i-1].DepartureTime, stops[i].DepartureTime)
		}
	}
}

func TestIssueTicket(t *testing.T) {
	st := New()
	ctx := context.Background()
	user, _ := st.CreateUser(ctx, "alice", 100)

	ticket, err := st.IssueTicket(ctx, user.UserID, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.TicketID != 1 || ticket.Balance != 70 {
		t.Errorf("got %+v, want ticket 1 with balance 70", ticket)
	}

	after, _ := st.GetUser(ctx, user.UserID)
	if after.Balance != ticket.Balance {
		t.Errorf("ticket balance %d disagrees with wallet balance %d", ticket.Balance, after.Balance)
	}
}

func TestIssueTicketInsufficient(t *testing.T) {
	st := New()
	ctx := context.Background()
	user, _ := st.CreateUser(ctx, "bob", 20)

	_, err := st.IssueTicket(ctx, user.UserID, 30)
	var short *store.InsufficientFundsError
	if !errors.As(err, &short) {
		t.Fatalf("got %v, want InsufficientFundsError", err)
	}
	if short.Shortfall != 10 {
		t.Errorf("shortfall: got %d, want 10", short.Shortfall)
	}

	after, _ := st.GetUser(ctx, user.UserID)
	if after.Balance != 20 {
		t.Errorf("balance mutated on failed issue: %d", after.Balance)
	}
	if n := len(st.Tickets()); n != 0 {
		t.Errorf("tickets written on failed issue: %d", n)
	}
}

func TestIssueTicketUnknownWalletZeroFare(t *testing.T) {
	st := New()
	ctx := context.Background()

	// An unknown wallet holds zero balance, which still covers a zero fare.
	ticket, err := st.IssueTicket(ctx, 999, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Balance != 0 {
		t.Errorf("balance: got %d, want 0", ticket.Balance)
	}
}

func TestCreditBalance(t *testing.T) {
	st := New()
	ctx := context.Background()
	user, _ := st.CreateUser(ctx, "carol", 50)

	balance, err := st.CreditBalance(ctx, user.UserID, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 150 {
		t.Errorf("balance: got %d, want 150", balance)
	}

	if _, err := st.CreditBalance(ctx, 999, 100); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown wallet: got %v, want ErrNotFound", err)
	}
}

func TestTrainsAtStation(t *testing.T) {
	st := New()
	seed(t, st)

	trains, err := st.TrainsAtStation(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trains) != 1 || trains[0].TrainID != 1 {
		t.Errorf("got %+v, want exactly train 1", trains)
	}
}
