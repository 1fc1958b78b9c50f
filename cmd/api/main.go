package main

// @title Map Gateway API
// @version 1.0
// @description Proxies map configuration, domain and ArcGIS token requests to the map backend.
// @BasePath /api
func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
