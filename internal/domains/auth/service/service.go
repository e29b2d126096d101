package service

import (
	"context"
	"fmt"
	"strconv"

	"classbook/config"
	"classbook/infras/jwt"
	"classbook/infras/otel"
	"classbook/infras/postgres"
	"classbook/internal/domains/auth/model/dto"
	"classbook/internal/events"
	"classbook/shared"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
	"classbook/shared/password"

	userModel "classbook/internal/domains/user/model"
	userRepo "classbook/internal/domains/user/repository"

	"github.com/rs/zerolog/log"
)

const (
	msgDuplicateEmail = "email already registered"
	msgBadReference   = "registration references a missing record"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	dispatcher events.Dispatcher
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, dispatcher events.Dispatcher) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		dispatcher: dispatcher,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(msgDuplicateEmail) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index decides the loser of two racing registrations.
	id, err := s.userRepo.InsertReturningID(ctx, req.ToUserModel(constant.ContextSystem, hashedPassword))
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, postgres.TranslateError(err, msgDuplicateEmail, msgBadReference)
	}

	res.UserID = id

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatcher.UserRegistered(c, events.UserEvent{
			UserID:     id,
			Name:       req.Name,
			Email:      req.Email,
			OccurredAt: events.Stamp(),
		})
	}()

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, identifierFilter(req.Identifier))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	// Same failure for unknown identifier and wrong password, so callers
	// cannot probe which accounts exist.
	if user.ID == 0 {
		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Int64("user_id", user.ID).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	token, err := s.jwtService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromToken(token, user)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID := shared.ContextUserID(ctx)
	username := shared.ContextUser(ctx)
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, username)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// identifierFilter matches the user by primary key when the identifier is
// numeric, by email otherwise.
func identifierFilter(identifier string) gDto.FilterGroup {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldID,
					Operator: gDto.FilterOperatorEq,
					Value:    id,
					Table:    userModel.TableName,
				},
			},
		}
	}

	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    identifier,
				Table:    userModel.TableName,
			},
		},
	}
}
