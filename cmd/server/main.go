package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/app"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	if err := service.Store.ApplyMigrations(service.Config.Database.MigrationsDir); err != nil {
		logger.Error.Fatalf("Failed to apply migrations: %v", err)
	}

	h := handlers.NewHandler(service)

	http.HandleFunc("POST /api/v1/users", h.HandleUserCreate)
	http.HandleFunc("GET /api/v1/users/{id}", h.HandleUserGet)
	http.HandleFunc("POST /api/v1/students", h.HandleStudentCreate)
	http.HandleFunc("GET /api/v1/students/{id}", h.HandleStudentGet)
	http.HandleFunc("POST /api/v1/employees", h.HandleEmployeeCreate)
	http.HandleFunc("GET /api/v1/employees/{id}", h.HandleEmployeeGet)

	http.HandleFunc("POST /api/v1/courses", h.HandleCourseCreate)
	http.HandleFunc("GET /api/v1/courses/{id}", h.HandleCourseGet)
	http.HandleFunc("PUT /api/v1/courses/{id}", h.HandleCourseUpdate)
	http.HandleFunc("PATCH /api/v1/courses/{id}", h.HandleCoursePatch)
	http.HandleFunc("DELETE /api/v1/courses/{id}", h.HandleCourseDelete)
	http.HandleFunc("GET /api/v1/employees/{ownerID}/courses", h.HandleOwnerCourses)

	http.HandleFunc("POST /api/v1/tasks", h.HandleTaskCreate)
	http.HandleFunc("GET /api/v1/tasks/{id}", h.HandleTaskGet)
	http.HandleFunc("PUT /api/v1/tasks/{id}", h.HandleTaskUpdate)
	http.HandleFunc("PATCH /api/v1/tasks/{id}", h.HandleTaskPatch)
	http.HandleFunc("DELETE /api/v1/tasks/{id}", h.HandleTaskDelete)
	http.HandleFunc("GET /api/v1/courses/{courseID}/tasks", h.HandleCourseTasks)
	http.HandleFunc("POST /api/v1/courses/{courseID}/tasks/reorder", h.HandleTaskReorder)
	http.HandleFunc("GET /api/v1/courses/{courseID}/scoreboard", h.HandleCourseScoreboard)

	http.HandleFunc("POST /api/v1/criteria", h.HandleCriteriaCreate)
	http.HandleFunc("POST /api/v1/criteria/batch", h.HandleCriteriaBatchCreate)
	http.HandleFunc("GET /api/v1/criteria/{id}", h.HandleCriteriaGet)
	http.HandleFunc("PUT /api/v1/criteria/{id}", h.HandleCriteriaUpdate)
	http.HandleFunc("PATCH /api/v1/criteria/{id}", h.HandleCriteriaPatch)
	http.HandleFunc("DELETE /api/v1/criteria/{id}", h.HandleCriteriaDelete)
	http.HandleFunc("GET /api/v1/tasks/{taskID}/criteria", h.HandleTaskCriteria)

	http.HandleFunc("POST /api/v1/submissions", h.HandleSubmissionCreate)
	http.HandleFunc("GET /api/v1/tasks/{taskID}/submissions", h.HandleTaskSubmissions)
	http.HandleFunc("GET /api/v1/tasks/{taskID}/submissions/{studentID}", h.HandleSubmissionGet)
	http.HandleFunc("PUT /api/v1/tasks/{taskID}/submissions/{studentID}", h.HandleSubmissionUpdate)
	http.HandleFunc("PATCH /api/v1/tasks/{taskID}/submissions/{studentID}", h.HandleSubmissionPatch)
	http.HandleFunc("DELETE /api/v1/tasks/{taskID}/submissions/{studentID}", h.HandleSubmissionDelete)
	http.HandleFunc("POST /api/v1/tasks/{taskID}/submissions/{studentID}/rescore", h.HandleSubmissionRescore)

	http.HandleFunc("POST /api/v1/attendance", h.HandleAttendanceCreate)
	http.HandleFunc("POST /api/v1/attendance/batch", h.HandleAttendanceBatchCreate)
	http.HandleFunc("GET /api/v1/attendance/{id}", h.HandleAttendanceGet)
	http.HandleFunc("GET /api/v1/courses/{courseID}/attendance", h.HandleCourseAttendance)
	http.HandleFunc("PUT /api/v1/attendance/{id}", h.HandleAttendanceUpdate)
	http.HandleFunc("PATCH /api/v1/attendance/{id}", h.HandleAttendancePatch)
	http.HandleFunc("DELETE /api/v1/attendance/{id}", h.HandleAttendanceDelete)

	http.HandleFunc("POST /api/v1/person-links", h.HandlePersonLinkCreate)
	http.HandleFunc("GET /api/v1/person-links", h.HandlePersonLinks)
	http.HandleFunc("GET /api/v1/person-links/{id}", h.HandlePersonLinkGet)
	http.HandleFunc("PUT /api/v1/person-links/{id}", h.HandlePersonLinkUpdate)
	http.HandleFunc("PATCH /api/v1/person-links/{id}", h.HandlePersonLinkPatch)
	http.HandleFunc("DELETE /api/v1/person-links/{id}", h.HandlePersonLinkDelete)

	http.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting course journal server on %s", service.Config.Server.Port)
	for _, hdr := range service.Config.API.RequiredHeaders {
		logger.Debug.Printf("Requiring header %s: %s", hdr.Name, hdr.Value)
	}
	if err := http.ListenAndServe(service.Config.Server.Port, nil); err != nil {
		logger.Error.Fatalf("Course journal server failed: %v", err)
	}
}
