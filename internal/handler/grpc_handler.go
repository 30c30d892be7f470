package handler

import (
	"context"
	"errors"

	"customer-service/genproto/customerpb"
	"customer-service/internal/domain"
	"customer-service/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCHandler exposes customer identification over gRPC for internal
// services that cannot go through the HTTP gateway.
type GRPCHandler struct {
	customerpb.UnimplementedCustomerServiceServer
	customerUC *usecase.CustomerUsecase
	logger     *zap.Logger
}

func NewGRPCHandler(customerUC *usecase.CustomerUsecase, logger *zap.Logger) *GRPCHandler {
	return &GRPCHandler{customerUC: customerUC, logger: logger}
}

func (h *GRPCHandler) IdentifyCustomer(ctx context.Context, req *customerpb.IdentifyRequest) (*customerpb.IdentifyResponse, error) {
	appID, err := uuid.Parse(req.GetAppId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid app_id")
	}
	if req.GetPlatformId() == "" {
		return nil, status.Error(codes.InvalidArgument, "platform_id is required")
	}
	platform, err := domain.ParsePlatform(req.GetPlatform())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid platform")
	}

	res, err := h.customerUC.Identify(ctx, usecase.IdentifyInput{
		AppID:       appID,
		Platform:    platform,
		PlatformID:  req.GetPlatformId(),
		AccessToken: req.GetAccessToken(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlatform), errors.Is(err, domain.ErrInvalidInput):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, domain.ErrConflict):
			return nil, status.Error(codes.AlreadyExists, "customer already exists")
		default:
			h.logger.Error("identify customer failed", zap.Error(err))
			return nil, status.Error(codes.Internal, "failed to identify customer")
		}
	}

	return &customerpb.IdentifyResponse{
		CustomerId: res.Customer.ID.String(),
		IsNew:      res.IsNew,
		FullName:   res.Customer.FullName(),
	}, nil
}
