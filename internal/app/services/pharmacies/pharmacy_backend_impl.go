package pharmacies

import (
	"context"
	"fmt"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/utils"
)

type pharmacyBackendClient struct {
	BackendClient contracts.BackendClient
}

func NewPharmacyBackendClient(backendClient contracts.BackendClient) contracts.PharmacyBackendClient {
	return &pharmacyBackendClient{
		BackendClient: backendClient,
	}
}

func (c *pharmacyBackendClient) tokenOpts(token string) *contracts.BackendOptions {
	return &contracts.BackendOptions{Token: token}
}

func (c *pharmacyBackendClient) FindProducts(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Product, error) {
	path := constvars.BackendPathPharmacyProducts + utils.EncodeListQuery(query)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "products", "medicines")
	products := make([]responses.Product, 0, len(items))
	for _, item := range items {
		products = append(products, mapProduct(item))
	}
	return products, nil
}

func (c *pharmacyBackendClient) SaveProduct(ctx context.Context, token string, request *requests.SaveProduct) (*responses.Product, error) {
	payload, err := c.BackendClient.Do(ctx, constvars.MethodPost, constvars.BackendPathPharmacyProducts, request, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	data, _ := utils.UnwrapData(payload).(map[string]interface{})
	if nested := utils.PickMap(data, "product", "medicine"); nested != nil {
		data = nested
	}
	if data == nil {
		// The create endpoint sometimes acknowledges with an empty body.
		return &responses.Product{
			Name:       request.Name,
			Category:   request.Category,
			Price:      request.Price,
			Stock:      request.Stock,
			ExpiryDate: request.ExpiryDate,
		}, nil
	}
	product := mapProduct(data)
	return &product, nil
}

func (c *pharmacyBackendClient) UpdateProduct(ctx context.Context, token, productID string, request *requests.SaveProduct) (*responses.Product, error) {
	path := fmt.Sprintf("%s/%s", constvars.BackendPathPharmacyProducts, productID)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodPut, path, request, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	data, _ := utils.UnwrapData(payload).(map[string]interface{})
	if nested := utils.PickMap(data, "product", "medicine"); nested != nil {
		data = nested
	}
	if data == nil {
		return &responses.Product{
			ID:         productID,
			Name:       request.Name,
			Category:   request.Category,
			Price:      request.Price,
			Stock:      request.Stock,
			ExpiryDate: request.ExpiryDate,
		}, nil
	}
	product := mapProduct(data)
	if product.ID == "" {
		product.ID = productID
	}
	return &product, nil
}

func (c *pharmacyBackendClient) FindOrders(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Order, error) {
	path := constvars.BackendPathPharmacyOrdersMine + utils.EncodeListQuery(query)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "orders")
	orders := make([]responses.Order, 0, len(items))
	for _, item := range items {
		orders = append(orders, mapOrder(item))
	}
	return orders, nil
}

func (c *pharmacyBackendClient) FindOrderByID(ctx context.Context, token, orderID string) (*responses.Order, error) {
	path := fmt.Sprintf("%s/%s", constvars.BackendPathPharmacyOrders, orderID)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	data, _ := utils.UnwrapData(payload).(map[string]interface{})
	if nested := utils.PickMap(data, "order"); nested != nil {
		data = nested
	}
	if data == nil {
		return nil, nil
	}
	order := mapOrder(data)
	return &order, nil
}

func (c *pharmacyBackendClient) UpdateOrderStatus(ctx context.Context, token, orderID, status string) error {
	path := fmt.Sprintf("%s/%s/status", constvars.BackendPathPharmacyOrders, orderID)
	body := map[string]string{"status": status}
	_, err := c.BackendClient.Do(ctx, constvars.MethodPatch, path, body, c.tokenOpts(token))
	return err
}

func (c *pharmacyBackendClient) Profile(ctx context.Context, token string) (*responses.PharmacyProfile, error) {
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, constvars.BackendPathPharmacyProfile, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}
	return mapPharmacyProfile(utils.UnwrapData(payload)), nil
}

func (c *pharmacyBackendClient) UpdateProfile(ctx context.Context, token string, request *requests.UpdatePharmacyProfile) (*responses.PharmacyProfile, error) {
	payload, err := c.BackendClient.Do(ctx, constvars.MethodPut, constvars.BackendPathPharmacyProfile, request, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}
	return mapPharmacyProfile(utils.UnwrapData(payload)), nil
}

func mapProduct(item map[string]interface{}) responses.Product {
	return responses.Product{
		ID:         utils.PickString(item, "_id", "id"),
		Name:       utils.PickString(item, "name", "medicineName"),
		Category:   utils.PickString(item, "category"),
		Price:      utils.PickFloat(item, "price", "mrp"),
		Stock:      utils.PickInt(item, "stock", "quantity"),
		ExpiryDate: utils.PickString(item, "expiryDate", "expiry"),
	}
}

func mapOrder(item map[string]interface{}) responses.Order {
	customerName := utils.PickString(item, "customerName")
	if customerName == "" {
		if customer := utils.PickMap(item, "customer", "user", "patient"); customer != nil {
			customerName = utils.PickString(customer, "name", "fullName", "userName")
		}
	}

	var orderItems []responses.OrderItem
	for _, raw := range utils.NormalizeList(item["items"], "items") {
		orderItems = append(orderItems, responses.OrderItem{
			Name:     utils.PickString(raw, "name", "medicineName"),
			Quantity: utils.PickInt(raw, "quantity", "qty"),
			Price:    utils.PickFloat(raw, "price"),
		})
	}

	return responses.Order{
		ID:           utils.PickString(item, "_id", "id"),
		CustomerName: customerName,
		Status:       utils.PickString(item, "status"),
		Total:        utils.PickFloat(item, "total", "totalAmount", "amount"),
		PlacedAt:     utils.PickString(item, "placedAt", "createdAt"),
		Items:        orderItems,
	}
}

func mapPharmacyProfile(payload interface{}) *responses.PharmacyProfile {
	data, _ := payload.(map[string]interface{})
	if data == nil {
		return nil
	}
	if nested := utils.PickMap(data, "pharmacy", "profile"); nested != nil {
		data = nested
	}

	profile := &responses.PharmacyProfile{
		ID:          utils.PickString(data, "_id", "id"),
		StoreName:   utils.PickString(data, "storeName", "name"),
		OwnerName:   utils.PickString(data, "ownerName"),
		Email:       utils.PickString(data, "email"),
		PhoneNumber: utils.PickString(data, "phoneNumber", "phone"),
		Status:      utils.PickString(data, "status"),
	}
	if address := utils.PickMap(data, "address"); address != nil {
		profile.Address = &responses.StoreAddress{
			Line1:   utils.PickString(address, "line1", "addressLine1"),
			Line2:   utils.PickString(address, "line2", "addressLine2"),
			City:    utils.PickString(address, "city"),
			State:   utils.PickString(address, "state"),
			Pincode: utils.PickString(address, "pincode", "zip"),
		}
	}
	return profile
}
