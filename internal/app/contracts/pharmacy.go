package contracts

import (
	"context"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
)

type PharmacyUsecase interface {
	FindProducts(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Product, error)
	SaveProduct(ctx context.Context, session *models.Session, request *requests.SaveProduct) (*responses.Product, error)
	UpdateProduct(ctx context.Context, session *models.Session, productID string, request *requests.SaveProduct) (*responses.Product, error)
	FindOrders(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Order, error)
	FindOrderByID(ctx context.Context, session *models.Session, orderID string) (*responses.Order, error)
	UpdateOrderStatus(ctx context.Context, session *models.Session, orderID string, request *requests.UpdateOrderStatus) (*responses.OrderStatus, error)
	Profile(ctx context.Context, session *models.Session) (*responses.PharmacyProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdatePharmacyProfile) (*responses.PharmacyProfile, error)
	Earnings(ctx context.Context, session *models.Session) (*responses.Earnings, error)
	Support(ctx context.Context) (*responses.SupportContacts, error)
	RenderInvoicePDF(ctx context.Context, session *models.Session, orderID string) ([]byte, error)
}

type PharmacyBackendClient interface {
	FindProducts(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Product, error)
	SaveProduct(ctx context.Context, token string, request *requests.SaveProduct) (*responses.Product, error)
	UpdateProduct(ctx context.Context, token, productID string, request *requests.SaveProduct) (*responses.Product, error)
	FindOrders(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Order, error)
	FindOrderByID(ctx context.Context, token, orderID string) (*responses.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID, status string) error
	Profile(ctx context.Context, token string) (*responses.PharmacyProfile, error)
	UpdateProfile(ctx context.Context, token string, request *requests.UpdatePharmacyProfile) (*responses.PharmacyProfile, error)
}
