package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/gsamarin/schedule_bot/internal/repository"
	"go.uber.org/zap"
)

type RegistrationService struct {
	pointRepo    *repository.PointRepository
	employeeRepo *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewRegistrationService(
	pointRepo *repository.PointRepository,
	employeeRepo *repository.EmployeeRepository,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		pointRepo:    pointRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// ValidFullName проверяет, что введены хотя бы имя и фамилия
// (минимум два слова через пробел)
func ValidFullName(fullName string) bool {
	return len(strings.Fields(fullName)) >= 2
}

// CheckPassword ищет ПВЗ по паролю. Возвращает nil, если пароль не подошёл
func (s *RegistrationService) CheckPassword(ctx context.Context, password string) (*model.Point, error) {
	return s.pointRepo.GetByPassword(ctx, strings.TrimSpace(password))
}

// Register регистрирует сотрудника или перепривязывает его к другому ПВЗ
// при повторной регистрации
func (s *RegistrationService) Register(
	ctx context.Context,
	telegramID int64,
	username, firstName string,
	pointID int64,
	fullName string,
) (*model.Employee, error) {
	employee := &model.Employee{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		PointID:    pointID,
		FullName:   strings.TrimSpace(fullName),
	}

	if err := s.employeeRepo.Upsert(ctx, employee); err != nil {
		return nil, fmt.Errorf("register employee: %w", err)
	}

	s.logger.Info("Employee registered",
		zap.Int64("telegram_id", telegramID),
		zap.String("full_name", employee.FullName),
		zap.Int64("point_id", pointID),
	)

	return employee, nil
}

// GetEmployee получает сотрудника по Telegram ID, nil если не зарегистрирован
func (s *RegistrationService) GetEmployee(ctx context.Context, telegramID int64) (*model.Employee, error) {
	return s.employeeRepo.GetByTelegramID(ctx, telegramID)
}
