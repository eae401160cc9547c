package datastore

import (
	"context"
	"time"

	"github.com/color-game/palettes/models"
)

// MockUserRepository is a mock implementation of UserRepository for testing.
type MockUserRepository struct {
	CreateFunc                 func(ctx context.Context, user models.User) (models.User, error)
	GetFunc                    func(ctx context.Context, userID string) (models.User, error)
	GetUserByEmailFunc         func(ctx context.Context, email string) (models.User, error)
	GetUserByUsernameFunc      func(ctx context.Context, username string) (models.User, error)
	DeleteUserByIDFunc         func(ctx context.Context, userID string) error
	UpdateFunc                 func(ctx context.Context, user models.User) (models.User, error)
	ValidateAndGetUserFunc     func(ctx context.Context, userLogin models.Credentials) (models.User, error)
	GetAllUsersFunc            func(ctx context.Context) ([]models.User, error)
	CreateDeviceFunc           func(ctx context.Context, device models.UserDevice) error
	GetDeviceByFingerprintFunc func(ctx context.Context, userID string, fingerprint string) (models.UserDevice, error)
	DeleteDeviceFunc           func(ctx context.Context, deviceID string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return user, nil
}

func (m *MockUserRepository) Get(ctx context.Context, userID string) (models.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return models.User{}, NoRowsError{NoRows: true}
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return models.User{}, NoRowsError{NoRows: true}
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.GetUserByUsernameFunc != nil {
		return m.GetUserByUsernameFunc(ctx, username)
	}
	return models.User{}, NoRowsError{NoRows: true}
}

func (m *MockUserRepository) DeleteUserByID(ctx context.Context, userID string) error {
	if m.DeleteUserByIDFunc != nil {
		return m.DeleteUserByIDFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return user, nil
}

func (m *MockUserRepository) ValidateAndGetUser(ctx context.Context, userLogin models.Credentials) (models.User, error) {
	if m.ValidateAndGetUserFunc != nil {
		return m.ValidateAndGetUserFunc(ctx, userLogin)
	}
	return models.User{}, NoRowsError{NoRows: true}
}

func (m *MockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockUserRepository) CreateDevice(ctx context.Context, device models.UserDevice) error {
	if m.CreateDeviceFunc != nil {
		return m.CreateDeviceFunc(ctx, device)
	}
	return nil
}

func (m *MockUserRepository) GetDeviceByFingerprint(ctx context.Context, userID string, fingerprint string) (models.UserDevice, error) {
	if m.GetDeviceByFingerprintFunc != nil {
		return m.GetDeviceByFingerprintFunc(ctx, userID, fingerprint)
	}
	return models.UserDevice{}, NoRowsError{NoRows: true}
}

func (m *MockUserRepository) DeleteDevice(ctx context.Context, deviceID string) error {
	if m.DeleteDeviceFunc != nil {
		return m.DeleteDeviceFunc(ctx, deviceID)
	}
	return nil
}

// MockPaletteRepository is a mock implementation of PaletteRepository for testing.
type MockPaletteRepository struct {
	CreateFunc     func(ctx context.Context, p models.SavedPalette) (models.SavedPalette, error)
	GetFunc        func(ctx context.Context, userID, paletteID string) (models.SavedPalette, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]models.SavedPalette, error)
	DeleteFunc     func(ctx context.Context, userID, paletteID string) error
}

func (m *MockPaletteRepository) Create(ctx context.Context, p models.SavedPalette) (models.SavedPalette, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return p, nil
}

func (m *MockPaletteRepository) Get(ctx context.Context, userID, paletteID string) (models.SavedPalette, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, paletteID)
	}
	return models.SavedPalette{}, NoRowsError{NoRows: true}
}

func (m *MockPaletteRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedPalette, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []models.SavedPalette{}, nil
}

func (m *MockPaletteRepository) Delete(ctx context.Context, userID, paletteID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, paletteID)
	}
	return nil
}

// MockDailyPaletteRepository is a mock implementation of DailyPaletteRepository for testing.
type MockDailyPaletteRepository struct {
	CreateFunc    func(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error)
	GetByDateFunc func(ctx context.Context, date time.Time) (models.DailyPalette, error)
	GetTodayFunc  func(ctx context.Context) (models.DailyPalette, error)
	GetAllFunc    func(ctx context.Context) ([]models.DailyPalette, error)
	UpsertFunc    func(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error)
}

func (m *MockDailyPaletteRepository) Create(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dailyPalette)
	}
	return dailyPalette, nil
}

func (m *MockDailyPaletteRepository) GetByDate(ctx context.Context, date time.Time) (models.DailyPalette, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, date)
	}
	return models.DailyPalette{}, NoRowsError{NoRows: true}
}

func (m *MockDailyPaletteRepository) GetToday(ctx context.Context) (models.DailyPalette, error) {
	if m.GetTodayFunc != nil {
		return m.GetTodayFunc(ctx)
	}
	return models.DailyPalette{}, NoRowsError{NoRows: true}
}

func (m *MockDailyPaletteRepository) GetAll(ctx context.Context) ([]models.DailyPalette, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []models.DailyPalette{}, nil
}

func (m *MockDailyPaletteRepository) Upsert(ctx context.Context, dailyPalette models.DailyPalette) (models.DailyPalette, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, dailyPalette)
	}
	return dailyPalette, nil
}

// MockPreferencesRepository is a mock implementation of PreferencesRepository for testing.
type MockPreferencesRepository struct {
	GetFunc    func(ctx context.Context, userID string) (models.Preferences, error)
	UpsertFunc func(ctx context.Context, prefs models.Preferences) (models.Preferences, error)
}

func (m *MockPreferencesRepository) Get(ctx context.Context, userID string) (models.Preferences, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return models.DefaultPreferences(userID), nil
}

func (m *MockPreferencesRepository) Upsert(ctx context.Context, prefs models.Preferences) (models.Preferences, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, prefs)
	}
	return prefs, nil
}
