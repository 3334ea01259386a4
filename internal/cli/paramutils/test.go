package paramutils

type MockFlagSet struct {
	StringMap map[string]interface{}
}

func (fs *MockFlagSet) GetStringOrDefault(flag, d string) string {
	if val, ok := fs.StringMap[flag]; ok {
		return val.(string)
	}

	return d
}

func (fs *MockFlagSet) GetBoolOrDefault(flag string, d bool) bool {
	if val, ok := fs.StringMap[flag]; ok {
		return val.(bool)
	}

	return d
}

func (fs *MockFlagSet) GetStringArrayOrDefault(flag string, d []string) []string {
	if val, ok := fs.StringMap[flag]; ok {
		return val.([]string)
	}

	return d
}
