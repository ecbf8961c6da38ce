package mocks

import "opentranscribe/internal/models"

type PreferencesRepositoryMock struct {
	PathFunc func() (string, error)
	GetFunc  func() (*models.Preferences, error)
	SaveFunc func(prefs *models.Preferences) error
}

func (m *PreferencesRepositoryMock) Path() (string, error) {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "/tmp/opentranscribe/preferences.json", nil
}

func (m *PreferencesRepositoryMock) Get() (*models.Preferences, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return nil, nil
}

func (m *PreferencesRepositoryMock) Save(prefs *models.Preferences) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(prefs)
	}
	return nil
}
