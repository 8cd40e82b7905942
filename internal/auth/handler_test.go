package auth_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == transport.TokenCookieName {
			return c
		}
	}
	return nil
}

var _ = Describe("Auth Handler", func() {
	var (
		mockRepo *MockUserRepository
		service  *auth.Service
		handler  *auth.Handler
	)

	BeforeEach(func() {
		mockRepo = NewMockUserRepository()
		mockRepo.AddUser("admin@mail.com", "password", 1)
		tokenGen := auth.NewJWTTokenGenerator("test-secret", 24*time.Hour)
		service = auth.NewService(mockRepo, tokenGen)
		handler = auth.NewHandler(service)
	})

	Describe("POST /login", func() {
		It("should set the token cookie and return Success for valid credentials", func() {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@mail.com","password":"password"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusSuccess))

			cookie := tokenCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).NotTo(BeEmpty())
		})

		It("should return the wrong-credentials envelope and no cookie for a mismatch", func() {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@mail.com","password":"wrong"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusError))
			Expect(env.Error).To(Equal("Wrong email or password"))
			Expect(tokenCookie(rec)).To(BeNil())
		})

		It("should report a query error when the store fails", func() {
			mockRepo.SetShouldFail(true, errors.New("connection refused"))

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@mail.com","password":"password"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Error).To(Equal("Error running query"))
		})

		It("should reject an unreadable body", func() {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /logout", func() {
		It("should expire the token cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			rec := httptest.NewRecorder()

			handler.Logout(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			cookie := tokenCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).To(BeEmpty())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("GET /dashboard behind the gate", func() {
		var gated http.Handler

		BeforeEach(func() {
			gated = handler.VerifyMiddleware(http.HandlerFunc(handler.Dashboard))
		})

		It("should fail without a cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			rec := httptest.NewRecorder()

			gated.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Error).To(Equal("You are not authorized"))
		})

		It("should fail with a tampered token", func() {
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.AddCookie(&http.Cookie{Name: transport.TokenCookieName, Value: "bogus"})
			rec := httptest.NewRecorder()

			gated.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Error).To(Equal("Wrong token"))
		})

		It("should fail with an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator("test-secret", -time.Hour)
			token, err := expiredGen.GenerateToken(1)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.AddCookie(&http.Cookie{Name: transport.TokenCookieName, Value: token})
			rec := httptest.NewRecorder()

			gated.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Error).To(Equal("Wrong token"))
		})

		It("should pass with the cookie issued by login", func() {
			loginReq := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@mail.com","password":"password"}`))
			loginRec := httptest.NewRecorder()
			handler.Login(loginRec, loginReq)

			cookie := tokenCookie(loginRec)
			Expect(cookie).NotTo(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()

			gated.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var env transport.Envelope
			Expect(json.NewDecoder(rec.Body).Decode(&env)).To(Succeed())
			Expect(env.Status).To(Equal(transport.StatusSuccess))
		})
	})
})
