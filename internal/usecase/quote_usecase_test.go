package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_jobs/internal/domain/entities"
	mock_interfaces "mecanica_jobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pricedDoc() *entities.WorkOrderDocument {
	return &entities.WorkOrderDocument{
		WorkItems:       []entities.WorkItem{{ID: "w-1", Name: "Labor", DurationHours: 2, PricePerHour: 60}},
		Parts:           []entities.Part{{ID: "p-1", Name: "Pads", Quantity: 1, UnitPrice: 30}},
		DiscountPercent: 50,
	}
}

func TestQuoteUseCase_SyncFromWorkOrder(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.SyncFromWorkOrder(context.Background(), "   ", pricedDoc())
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("nothing priced", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.SyncFromWorkOrder(context.Background(), "job-1", &entities.WorkOrderDocument{})
		if !errors.Is(err, ErrInvalidQuoteValue) {
			t.Fatalf("expected ErrInvalidQuoteValue, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.SyncFromWorkOrder(context.Background(), "job-1", pricedDoc())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "job-1" || q.Price != 75 || q.LaborSubtotal != 120 || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.CreatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		if _, err := uc.SyncFromWorkOrder(context.Background(), " job-1 ", pricedDoc()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reprice pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{ID: "job-1", Status: entities.QuoteStatusPending}, nil)
		repo.EXPECT().UpdatePricingByJobID(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, q entities.Quote) (entities.Quote, error) {
				return q, nil
			},
		)

		res, err := uc.SyncFromWorkOrder(context.Background(), "job-1", pricedDoc())
		if err != nil || res.Price != 75 {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})

	t.Run("decided quotes are not repriced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{ID: "job-1", Status: entities.QuoteStatusApproved}, nil)

		_, err := uc.SyncFromWorkOrder(context.Background(), "job-1", pricedDoc())
		if !errors.Is(err, ErrQuoteAlreadyDecided) {
			t.Fatalf("expected ErrQuoteAlreadyDecided, got %v", err)
		}
	})
}

func TestQuoteUseCase_DecisionFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, jobID string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "approve", call: (*QuoteUseCase).ApproveByJobID, status: entities.QuoteStatusApproved},
		{name: "reject", call: (*QuoteUseCase).RejectByJobID, status: entities.QuoteStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid job", func(t *testing.T) {
			uc := NewQuoteUseCase(nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidJobID) {
				t.Fatalf("expected ErrInvalidJobID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "job-1")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" already decided", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{ID: "job-1", JobID: "job-1", Status: entities.QuoteStatusRejected}, nil)

			_, err := tc.call(uc, context.Background(), "job-1")
			if !errors.Is(err, ErrQuoteAlreadyDecided) {
				t.Fatalf("expected ErrQuoteAlreadyDecided, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{ID: "job-1", JobID: "job-1", Status: entities.QuoteStatusPending}, nil)
			repo.EXPECT().UpdateStatusByJobID(gomock.Any(), "job-1", tc.status).Return(entities.Quote{ID: "job-1", JobID: "job-1", Status: tc.status}, nil)

			res, err := tc.call(uc, context.Background(), " job-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})
	}
}
