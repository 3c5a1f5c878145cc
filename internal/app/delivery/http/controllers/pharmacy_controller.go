package controllers

import (
	"fmt"
	"net/http"
	"sync"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PharmacyController struct {
	Log             *zap.Logger
	PharmacyUsecase contracts.PharmacyUsecase
}

var (
	pharmacyControllerInstance *PharmacyController
	oncePharmacyController     sync.Once
)

func NewPharmacyController(logger *zap.Logger, pharmacyUsecase contracts.PharmacyUsecase) *PharmacyController {
	oncePharmacyController.Do(func() {
		pharmacyControllerInstance = &PharmacyController{
			Log:             logger,
			PharmacyUsecase: pharmacyUsecase,
		}
	})
	return pharmacyControllerInstance
}

func (ctrl *PharmacyController) orderID(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderID := chi.URLParam(r, constvars.URLParamOrderID)
	if orderID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamOrderID))
		return "", false
	}
	return orderID, true
}

func (ctrl *PharmacyController) FindProducts(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PharmacyUsecase.FindProducts(r.Context(), session, utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProductsFetchSuccess, response)
}

func (ctrl *PharmacyController) SaveProduct(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SaveProduct)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.PharmacyUsecase.SaveProduct(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ProductCreateSuccess, response)
}

func (ctrl *PharmacyController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	productID := chi.URLParam(r, constvars.URLParamProductID)
	if productID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamProductID))
		return
	}

	request := new(requests.SaveProduct)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.PharmacyUsecase.UpdateProduct(r.Context(), session, productID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProductUpdateSuccess, response)
}

func (ctrl *PharmacyController) FindOrders(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PharmacyUsecase.FindOrders(r.Context(), session, utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrdersFetchSuccess, response)
}

func (ctrl *PharmacyController) FindOrderByID(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	orderID, ok := ctrl.orderID(w, r)
	if !ok {
		return
	}

	response, err := ctrl.PharmacyUsecase.FindOrderByID(r.Context(), session, orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderFetchSuccess, response)
}

func (ctrl *PharmacyController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	orderID, ok := ctrl.orderID(w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateOrderStatus)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.PharmacyUsecase.UpdateOrderStatus(r.Context(), session, orderID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderStatusUpdateSuccess, response)
}

func (ctrl *PharmacyController) Profile(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PharmacyUsecase.Profile(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PharmacyProfileFetchSuccess, response)
}

func (ctrl *PharmacyController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePharmacyProfile)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.PharmacyUsecase.UpdateProfile(r.Context(), session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PharmacyProfileSaveSuccess, response)
}

func (ctrl *PharmacyController) Earnings(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PharmacyUsecase.Earnings(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EarningsFetchSuccess, response)
}

func (ctrl *PharmacyController) Support(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.PharmacyUsecase.Support(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SupportFetchSuccess, response)
}

// DownloadInvoice streams the rendered PDF directly rather than wrapping it
// in the JSON envelope every other endpoint uses.
func (ctrl *PharmacyController) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	orderID, ok := ctrl.orderID(w, r)
	if !ok {
		return
	}

	document, err := ctrl.PharmacyUsecase.RenderInvoicePDF(r.Context(), session, orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=invoice-%s.pdf", orderID))
	w.WriteHeader(constvars.StatusOK)
	if _, err := w.Write(document); err != nil {
		ctrl.Log.Warn("Invoice write aborted", zap.String("order_id", orderID), zap.Error(err))
	}
}
