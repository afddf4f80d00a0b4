package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	assignmentHTTP "campus-day-planner/internal/assignment/delivery/http"
	assignmentRepo "campus-day-planner/internal/assignment/repository/postgre"
	assignmentUC "campus-day-planner/internal/assignment/usecase"
	calendarHTTP "campus-day-planner/internal/calendar/delivery/http"
	calendarUC "campus-day-planner/internal/calendar/usecase"
	"campus-day-planner/internal/middleware"
	"campus-day-planner/internal/planner/agent"
	"campus-day-planner/internal/planner/cache"
	plannerHTTP "campus-day-planner/internal/planner/delivery/http"
	plannerRepo "campus-day-planner/internal/planner/repository/postgre"
	"campus-day-planner/internal/planner/scheduler"
	"campus-day-planner/internal/planner/transit"
	plannerUC "campus-day-planner/internal/planner/usecase"
	"campus-day-planner/pkg/datemath"
)

// setupDomains wires the three domains bottom-up. They share one plan
// cache so assignment and calendar mutations invalidate planner output.
//
// Pattern per domain:
//  1. Repository:   repo := domainRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := domainUC.New(...)
//  3. HTTP Handler: h := domainHTTP.New(srv.l, uc)
//  4. Routes:       domainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	dateMath, err := datemath.NewParser(srv.cfg.Planner.Timezone)
	if err != nil {
		return err
	}
	loc := dateMath.Location()

	planCache := cache.New(srv.l, srv.cfg.Planner.CacheTTL)

	// Calendar domain. Its use case doubles as the planner's event source.
	calUsecase := calendarUC.New(
		srv.l,
		srv.gcal,
		planCache,
		srv.cfg.GoogleCalendar.CalendarID,
		srv.cfg.Planner.Timezone,
		loc,
	)

	// Planner domain.
	pRepo := plannerRepo.New(srv.postgresDB, srv.l)
	sched := scheduler.New(srv.l, scheduler.Config{
		MaxStudyHoursPerDay: srv.cfg.Planner.MaxStudyHoursPerDay,
		MaxAssignmentHours:  srv.cfg.Planner.MaxAssignmentHours,
		MaxBlockHours:       srv.cfg.Planner.MaxBlockHours,
		MinBlockMinutes:     srv.cfg.Planner.MinBlockMinutes,
	})

	var decider agent.Decider
	if srv.gemini != nil {
		decider = agent.NewGeminiDecider(srv.l, srv.gemini)
	}
	decisionAdapter := agent.NewAdapter(srv.l, decider, srv.cfg.Gemini.Timeout)

	var transitEngine plannerUC.TransitEngine
	if tt, ttErr := transit.LoadTimetable(srv.cfg.Timetable.Path); ttErr != nil {
		srv.l.Warnf(ctx, "Timetable unavailable, bus suggestions disabled: %v", ttErr)
	} else {
		transitEngine = transit.NewEngine(srv.l, tt, transit.Config{
			ArrivalBufferMinutes:   srv.cfg.Timetable.ArrivalBufferMinutes,
			DepartureBufferMinutes: srv.cfg.Timetable.DepartureBufferMinutes,
			LateNightHour:          srv.cfg.Timetable.LateNightHour,
		})
	}

	pUsecase := plannerUC.New(
		srv.l,
		pRepo,
		calUsecase,
		sched,
		decisionAdapter,
		transitEngine,
		planCache,
		dateMath,
		plannerUC.Config{
			DayStartHour:        srv.cfg.Planner.DayStartHour,
			DayEndHour:          srv.cfg.Planner.DayEndHour,
			MinFreeBlockMinutes: srv.cfg.Planner.MinFreeBlockMinutes,
			RetentionDays:       srv.cfg.Planner.CacheRetentionDays,
		},
	)

	// Assignment domain.
	aRepo := assignmentRepo.New(srv.postgresDB, srv.l)
	aUsecase := assignmentUC.New(aRepo, planCache, loc, srv.l, uuid.NewString)

	// Routes.
	plannerHTTP.RegisterRoutes(api, plannerHTTP.New(srv.l, pUsecase), mw)
	assignmentHTTP.RegisterRoutes(api, assignmentHTTP.New(srv.l, aUsecase), mw)
	calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, calUsecase, pUsecase), mw)

	srv.l.Infof(ctx, "Planner, assignment and calendar domains registered")
	return nil
}
