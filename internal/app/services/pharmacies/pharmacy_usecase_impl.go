package pharmacies

import (
	"context"
	"sync"
	"time"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type pharmacyUsecase struct {
	PharmacyClient contracts.PharmacyBackendClient
	EventPublisher contracts.EventPublisher
	Log            *zap.Logger
}

var (
	pharmacyUsecaseInstance *pharmacyUsecase
	oncePharmacyUsecase     sync.Once
)

func NewPharmacyUsecase(pharmacyClient contracts.PharmacyBackendClient, eventPublisher contracts.EventPublisher, logger *zap.Logger) contracts.PharmacyUsecase {
	oncePharmacyUsecase.Do(func() {
		pharmacyUsecaseInstance = &pharmacyUsecase{
			PharmacyClient: pharmacyClient,
			EventPublisher: eventPublisher,
			Log:            logger,
		}
	})
	return pharmacyUsecaseInstance
}

func sessionToken(session *models.Session) (string, error) {
	if session == nil || session.Token == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return session.Token, nil
}

func (uc *pharmacyUsecase) FindProducts(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Product, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.PharmacyClient.FindProducts(ctx, token, query)
}

func (uc *pharmacyUsecase) SaveProduct(ctx context.Context, session *models.Session, request *requests.SaveProduct) (*responses.Product, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.PharmacyClient.SaveProduct(ctx, token, request)
}

func (uc *pharmacyUsecase) UpdateProduct(ctx context.Context, session *models.Session, productID string, request *requests.SaveProduct) (*responses.Product, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.PharmacyClient.UpdateProduct(ctx, token, productID, request)
}

func (uc *pharmacyUsecase) FindOrders(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Order, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.PharmacyClient.FindOrders(ctx, token, query)
}

func (uc *pharmacyUsecase) FindOrderByID(ctx context.Context, session *models.Session, orderID string) (*responses.Order, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}

	order, err := uc.PharmacyClient.FindOrderByID(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrBackendRejected(constvars.StatusNotFound, "Not found")
	}
	return order, nil
}

// UpdateOrderStatus only reports success once the backend has accepted the
// transition; nothing is announced for a rejected one.
func (uc *pharmacyUsecase) UpdateOrderStatus(ctx context.Context, session *models.Session, orderID string, request *requests.UpdateOrderStatus) (*responses.OrderStatus, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if err := uc.PharmacyClient.UpdateOrderStatus(ctx, token, orderID, request.Status); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.EventOrderStatusChanged, map[string]interface{}{
		"order_id": orderID,
		"status":   request.Status,
	})

	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	utils.LogBusinessEvent(uc.Log, "order_status_updated", requestID,
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingOperationKey, request.Status),
	)
	return &responses.OrderStatus{ID: orderID, Status: request.Status}, nil
}

func (uc *pharmacyUsecase) Profile(ctx context.Context, session *models.Session) (*responses.PharmacyProfile, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.PharmacyClient.Profile(ctx, token)
}

func (uc *pharmacyUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdatePharmacyProfile) (*responses.PharmacyProfile, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.PharmacyClient.UpdateProfile(ctx, token, request)
}

// Earnings is computed gateway-side from the order history; the backend has no
// earnings endpoint. Only delivered orders count.
func (uc *pharmacyUsecase) Earnings(ctx context.Context, session *models.Session) (*responses.Earnings, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}

	orders, err := uc.PharmacyClient.FindOrders(ctx, token, &requests.ListQuery{Limit: 500})
	if err != nil {
		return nil, err
	}

	earnings := &responses.Earnings{}
	monthlyTotals := map[string]float64{}
	monthOrder := []string{}
	for _, order := range orders {
		if order.Status != "delivered" {
			continue
		}
		earnings.Total += order.Total

		month := monthOf(order.PlacedAt)
		if month == "" {
			continue
		}
		if _, seen := monthlyTotals[month]; !seen {
			monthOrder = append(monthOrder, month)
		}
		monthlyTotals[month] += order.Total
	}

	for _, month := range monthOrder {
		earnings.Monthly = append(earnings.Monthly, map[string]interface{}{
			"month": month,
			"total": monthlyTotals[month],
		})
	}
	return earnings, nil
}

func (uc *pharmacyUsecase) Support(ctx context.Context) (*responses.SupportContacts, error) {
	return &responses.SupportContacts{
		Email: "support@doorspital.com",
		Phone: "+91 1800-120-3040",
		Hours: "Mon-Sat, 9:00-18:00 IST",
	}, nil
}

// RenderInvoicePDF joins the order and the pharmacy profile concurrently and
// lays the invoice out server-side.
func (uc *pharmacyUsecase) RenderInvoicePDF(ctx context.Context, session *models.Session, orderID string) ([]byte, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}

	var (
		order   *responses.Order
		profile *responses.PharmacyProfile
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var orderErr error
		order, orderErr = uc.PharmacyClient.FindOrderByID(groupCtx, token, orderID)
		return orderErr
	})
	group.Go(func() error {
		// The invoice header degrades gracefully without a profile.
		var profileErr error
		profile, profileErr = uc.PharmacyClient.Profile(groupCtx, token)
		if profileErr != nil {
			profile = nil
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrBackendRejected(constvars.StatusNotFound, "Not found")
	}

	return renderInvoicePDF(order, profile)
}

func (uc *pharmacyUsecase) publishEvent(ctx context.Context, name string, payload map[string]interface{}) {
	if uc.EventPublisher == nil {
		return
	}

	event := &models.Event{
		ID:         utils.GenerateEventID(),
		Name:       name,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		// Events are advisory; a broker outage must not fail the request.
		uc.Log.Warn("Event publish failed", zap.String(constvars.LoggingEventKey, name), zap.Error(err))
	}
}

func monthOf(timestamp string) string {
	if len(timestamp) >= 7 {
		return timestamp[:7]
	}
	return ""
}
