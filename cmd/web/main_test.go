package main

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "TREINAPP_ADDR":
		// Pick a free port so parallel test servers never collide.
		return "localhost:0", true
	case "TREINAPP_SQLITE_URL":
		return ":memory:", true
	default:
		return "", false
	}
}
