package ticket_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"

	"github.com/frahmantamala/employee-management/internal/ticket"
	ticketPostgres "github.com/frahmantamala/employee-management/internal/ticket/postgres"
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
	dsn := fmt.Sprintf("file:ticket_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	Expect(err).NotTo(HaveOccurred())

	sqlDB, err := db.DB()
	Expect(err).NotTo(HaveOccurred())
	sqlDB.SetMaxOpenConns(1)

	Expect(db.AutoMigrate(&ticket.Ticket{})).To(Succeed())
	return db
}

var _ = Describe("Ticket Handler", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		db = openTestDB()

		repo := ticketPostgres.NewTicketRepository(db)
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := ticket.NewService(repo, lg)
		handler := ticket.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/getTickets", handler.GetTickets)
		router.Get("/getTicket/{id}", handler.GetTicket)
		router.Post("/createTicket", handler.CreateTicket)
		router.Put("/updateTicket/{id}", handler.UpdateTicket)
		router.Delete("/deleteTickets/{id}", handler.DeleteTicket)
		router.Get("/ticketCount", handler.TicketCount)
		router.Get("/ticketsToDoCount", handler.TicketsToDoCount)
		router.Get("/ticketsInProgressCount", handler.TicketsInProgressCount)
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
		It("should create a ticket and round-trip it through the list", func() {
			rec := doJSON(http.MethodPost, "/createTicket", `{"title":"Fix login redirect","desc":"redirect loops on stale cookie","priority":"High","status":"Open","assignee":"Jamie"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusSuccess))

			rec = doJSON(http.MethodGet, "/getTickets", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var list struct {
				Status string
				Result []ticket.Ticket
			}
			Expect(json.NewDecoder(rec.Body).Decode(&list)).To(Succeed())
			Expect(list.Result).To(HaveLen(1))
			Expect(list.Result[0].Title).To(Equal("Fix login redirect"))
			Expect(list.Result[0].Priority).To(Equal("High"))
			Expect(list.Result[0].Assignee).To(Equal("Jamie"))
		})

		It("should reject a missing title", func() {
			rec := doJSON(http.MethodPost, "/createTicket", `{"desc":"no title"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /getTicket/{id}", func() {
		It("should return a success with an empty result for a missing id", func() {
			rec := doJSON(http.MethodGet, "/getTicket/999", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env struct {
				Status string
				Result []ticket.Ticket
			}
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusSuccess))
			Expect(env.Result).To(BeEmpty())
		})
	})

	Describe("DELETE /deleteTickets/{id}", func() {
		It("should remove the row and stay successful when repeated", func() {
			Expect(doJSON(http.MethodPost, "/createTicket", `{"title":"A"}`).Code).To(Equal(http.StatusOK))

			Expect(doJSON(http.MethodDelete, "/deleteTickets/1", "").Code).To(Equal(http.StatusOK))
			Expect(doJSON(http.MethodDelete, "/deleteTickets/1", "").Code).To(Equal(http.StatusOK))

			var n int64
			Expect(db.Model(&ticket.Ticket{}).Count(&n).Error).To(Succeed())
			Expect(n).To(BeZero())
		})
	})

	Describe("count endpoints", func() {
		It("should report totals under the dashboard's field names", func() {
			Expect(doJSON(http.MethodPost, "/createTicket", `{"title":"A","status":"Open"}`).Code).To(Equal(http.StatusOK))
			Expect(doJSON(http.MethodPost, "/createTicket", `{"title":"B","status":"Open"}`).Code).To(Equal(http.StatusOK))
			Expect(doJSON(http.MethodPost, "/createTicket", `{"title":"C","status":"Close"}`).Code).To(Equal(http.StatusOK))

			Expect(countPayload("/ticketCount")).To(Equal([]map[string]int64{{"ticket": 3}}))
			Expect(countPayload("/ticketsToDoCount")).To(Equal([]map[string]int64{{"openTicketCount": 2}}))
			Expect(countPayload("/ticketsInProgressCount")).To(Equal([]map[string]int64{{"closedTicketCount": 1}}))
		})
	})
})
