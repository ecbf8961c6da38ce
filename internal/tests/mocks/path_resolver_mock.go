package mocks

type PathResolverMock struct {
	AppDataDirFunc func() (string, bool)
	Calls          int
}

func (m *PathResolverMock) AppDataDir() (string, bool) {
	m.Calls++
	if m.AppDataDirFunc != nil {
		return m.AppDataDirFunc()
	}
	return "", false
}
