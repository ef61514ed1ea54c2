package cmd

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smartreply/internal/apihandlers"
	"smartreply/internal/app"
	"smartreply/web"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port; empty means the configured PORT
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the smartreply HTTP API and web front end",
	Long: `Starts an HTTP server exposing the classification pipeline as JSON endpoints
(/api/process, /api/batch), the ZIP batch upload, and a minimal HTML page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := NewRouter(appInstance)

		port := servePort
		if port == "" {
			port = fmt.Sprintf("%d", appInstance.Config.Port)
		}
		listenAddr := fmt.Sprintf("%s:%s", serveAddr, port)
		log.Infof("starting smartreply server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

// NewRouter assembles the gin engine with every route mounted. Split out so
// tests can drive the full HTTP surface in-process.
func NewRouter(appInstance *app.App) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	handler := apihandlers.NewAPIHandler(appInstance)

	api := router.Group("/api")
	{
		api.POST("/process", handler.ProcessHandler)
		api.POST("/batch", handler.BatchHandler)
	}

	router.GET("/", handler.IndexHandler)
	router.POST("/process", handler.WebProcessHandler)
	router.POST("/batch_upload", handler.BatchUploadHandler)
	router.GET("/health", handler.HealthHandler)
	router.Static("/reports", appInstance.Config.ReportsDir)

	return router
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "0.0.0.0", "Address to listen on")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to PORT from config)")
}
