package main

import (
	"fmt"
	"net/http"

	"github.com/shiftwise/timeclock-backend-go/internal/config"
	appHTTP "github.com/shiftwise/timeclock-backend-go/internal/handler/http"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/geocode"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwise/timeclock-backend-go/internal/service/attendance"
	scheduleService "github.com/shiftwise/timeclock-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	geocoder := geocode.NewHTTPResolver(cfg.Geocode.BaseURL)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, jwtService, geocoder)
	scheduleSvc := scheduleService.NewScheduleService(db, workScheduleRepo, attendanceRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(jwtService, attendanceHandler, scheduleHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
