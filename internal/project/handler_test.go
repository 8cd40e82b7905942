package project_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"

	"github.com/frahmantamala/employee-management/internal/project"
	projectPostgres "github.com/frahmantamala/employee-management/internal/project/postgres"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbCounter int64

func openTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:project_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	Expect(err).NotTo(HaveOccurred())

	sqlDB, err := db.DB()
	Expect(err).NotTo(HaveOccurred())
	sqlDB.SetMaxOpenConns(1)

	Expect(db.AutoMigrate(&project.Project{})).To(Succeed())
	return db
}

var _ = Describe("Project Handler", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		db = openTestDB()

		repo := projectPostgres.NewProjectRepository(db)
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := project.NewService(repo, lg)
		handler := project.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/getProjects", handler.GetProjects)
		router.Get("/getProject/{id}", handler.GetProject)
		router.Post("/createProject", handler.CreateProject)
		router.Put("/updateProject/{id}", handler.UpdateProject)
		router.Delete("/deleteProjects/{id}", handler.DeleteProject)
		router.Get("/projectCount", handler.ProjectCount)
		router.Get("/openProjectCount", handler.OpenProjectCount)
		router.Get("/closedProjectCount", handler.ClosedProjectCount)
	})

	doJSON := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	countPayload := func(target string) []map[string]int64 {
		rec := doJSON(http.MethodGet, target, "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var payload []map[string]int64
		Expect(json.NewDecoder(rec.Body).Decode(&payload)).To(Succeed())
		return payload
	}

	Describe("creating and listing", func() {
		It("should create a To Do project, list it, and count it as closed", func() {
			rec := doJSON(http.MethodPost, "/createProject", `{"name":"Alpha","desc":"test","status":"To Do"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusSuccess))
			Expect(env.Result).To(BeNil())

			rec = doJSON(http.MethodGet, "/getProjects", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var list struct {
				Status string
				Result []project.Project
			}
			Expect(json.NewDecoder(rec.Body).Decode(&list)).To(Succeed())
			Expect(list.Status).To(Equal(transport.StatusSuccess))
			Expect(list.Result).To(HaveLen(1))
			Expect(list.Result[0].Name).To(Equal("Alpha"))
			Expect(list.Result[0].Desc).To(Equal("test"))
			Expect(list.Result[0].Status).To(Equal("To Do"))

			Expect(countPayload("/closedProjectCount")).To(Equal([]map[string]int64{{"closeProjectCount": 1}}))
		})

		It("should reject an unreadable body", func() {
			rec := doJSON(http.MethodPost, "/createProject", `{`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a missing name", func() {
			rec := doJSON(http.MethodPost, "/createProject", `{"desc":"no name"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusError))
		})
	})

	Describe("GET /getProject/{id}", func() {
		It("should return a success with an empty result for a missing id", func() {
			rec := doJSON(http.MethodGet, "/getProject/999", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env struct {
				Status string
				Result []project.Project
			}
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusSuccess))
			Expect(env.Result).To(BeEmpty())
		})
	})

	Describe("PUT /updateProject/{id}", func() {
		It("should move a project between statuses", func() {
			Expect(doJSON(http.MethodPost, "/createProject", `{"name":"Alpha","desc":"test","status":"To Do"}`).Code).To(Equal(http.StatusOK))

			rec := doJSON(http.MethodPut, "/updateProject/1", `{"name":"Alpha","desc":"kicked off","status":"In Progress"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var stored project.Project
			Expect(db.First(&stored).Error).To(Succeed())
			Expect(stored.Desc).To(Equal("kicked off"))
			Expect(stored.Status).To(Equal("In Progress"))

			Expect(countPayload("/openProjectCount")).To(Equal([]map[string]int64{{"openProjectCount": 1}}))
			Expect(countPayload("/closedProjectCount")).To(Equal([]map[string]int64{{"closeProjectCount": 0}}))
		})

		It("should report success for a missing id", func() {
			rec := doJSON(http.MethodPut, "/updateProject/999", `{"name":"Ghost"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("DELETE /deleteProjects/{id}", func() {
		It("should remove the row and stay successful when repeated", func() {
			Expect(doJSON(http.MethodPost, "/createProject", `{"name":"Alpha"}`).Code).To(Equal(http.StatusOK))

			Expect(doJSON(http.MethodDelete, "/deleteProjects/1", "").Code).To(Equal(http.StatusOK))
			Expect(doJSON(http.MethodDelete, "/deleteProjects/1", "").Code).To(Equal(http.StatusOK))

			var n int64
			Expect(db.Model(&project.Project{}).Count(&n).Error).To(Succeed())
			Expect(n).To(BeZero())
		})
	})

	Describe("count endpoints", func() {
		It("should report totals and the status split", func() {
			Expect(doJSON(http.MethodPost, "/createProject", `{"name":"Alpha","status":"To Do"}`).Code).To(Equal(http.StatusOK))
			Expect(doJSON(http.MethodPost, "/createProject", `{"name":"Beta","status":"In Progress"}`).Code).To(Equal(http.StatusOK))
			Expect(doJSON(http.MethodPost, "/createProject", `{"name":"Gamma","status":"In Progress"}`).Code).To(Equal(http.StatusOK))

			Expect(countPayload("/projectCount")).To(Equal([]map[string]int64{{"project": 3}}))
			Expect(countPayload("/openProjectCount")).To(Equal([]map[string]int64{{"openProjectCount": 2}}))
			Expect(countPayload("/closedProjectCount")).To(Equal([]map[string]int64{{"closeProjectCount": 1}}))
		})
	})
})
