package main

import (
	"context"
	"net/http"

	"wayfinder-api/internal/config"
	"wayfinder-api/internal/handler"
	"wayfinder-api/internal/offline"
	"wayfinder-api/internal/repository"
	"wayfinder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		Wayfinder API
//	@version	1.0

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate schema")
	}

	routeService := service.NewRouteService(config.ORSKey, config.ORSBaseURL)
	geoCodeService := service.NewGeoCodeService(config.NominatimBaseURL)
	reverseGeocodeService := service.NewReverseGeoCodeService(config.NominatimBaseURL)
	poiService := service.NewPOIService(config.OverpassBaseURL)
	locationService := service.NewLocationService(repo)
	preferenceService := service.NewPreferenceService(repo)

	// Offline cache: install the current generation, then purge the rest.
	cacheManager := offline.NewManager(config.CacheVersion, config.TileHostSuffix, config.AppShellURL, offline.NewMemoryStore())
	if err := cacheManager.Install(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot install offline cache")
	}
	if err := cacheManager.Activate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot activate offline cache")
	}

	routeHandler := handler.NewRouteHandler(routeService)
	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)
	poiHandler := handler.NewPOIHandler(poiService)
	locationHandler := handler.NewLocationHandler(locationService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	tileHandler := handler.NewTileHandler(cacheManager, config.TileBaseURL)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.POST("/api/route", routeHandler.CalculateRoute)
	r.GET("/api/geocode", geoCodeHandler.GeoCode)
	r.GET("/api/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)
	r.GET("/api/poi", poiHandler.Query)

	r.POST("/api/locations", locationHandler.Save)
	r.GET("/api/locations", locationHandler.List)
	r.DELETE("/api/locations/:id", locationHandler.Delete)
	r.DELETE("/api/locations", locationHandler.Clear)

	r.GET("/api/preferences", preferenceHandler.Get)
	r.PUT("/api/preferences/markers/:name", preferenceHandler.SetMarker)
	r.DELETE("/api/preferences/markers/:name", preferenceHandler.RemoveMarker)
	r.PUT("/api/preferences/flags", preferenceHandler.SetFlags)

	r.GET("/tiles/*path", tileHandler.Tile)
	r.GET("/", tileHandler.Shell)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
