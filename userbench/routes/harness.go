package routes

import (
	"bytes"
	"html/template"
	"net/http"

	"userbench/userbench/controllers"
	"userbench/userbench/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var harnessTmpl = template.Must(template.New("harness").Parse(tmplHarness))

type outputBlock struct {
	ID     string
	Text   string
	Failed bool
}

type createSection struct {
	Username string
	Email    string
	Out      outputBlock
}

type idSection struct {
	ID  string
	Out outputBlock
}

type updateSection struct {
	ID       string
	Username string
	Email    string
	Out      outputBlock
}

type harnessPage struct {
	APIURL string
	List   outputBlock
	Create createSection
	Get    idSection
	Update updateSection
	Delete idSection
}

func newHarnessPage(apiURL string) *harnessPage {
	return &harnessPage{
		APIURL: apiURL,
		List:   outputBlock{ID: "list-output"},
		Create: createSection{Out: outputBlock{ID: "create-output"}},
		Get:    idSection{Out: outputBlock{ID: "get-output"}},
		Update: updateSection{Out: outputBlock{ID: "update-output"}},
		Delete: idSection{Out: outputBlock{ID: "delete-output"}},
	}
}

func (b *outputBlock) set(res controllers.Result) {
	b.Text = res.Output
	b.Failed = res.Failed
}

func render(w http.ResponseWriter, page *harnessPage) {
	var buf bytes.Buffer
	if err := harnessTmpl.ExecuteTemplate(&buf, "base", page); err != nil {
		logging.ErrorLogger.Error("render harness page", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// HarnessRoutes serves the tester page. Each form posts to its own endpoint,
// which performs one users API call and re-renders the page.
func HarnessRoutes(ctrl *controllers.HarnessController, apiURL string) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render(w, newHarnessPage(apiURL))
	})

	r.Post("/users/list", func(w http.ResponseWriter, r *http.Request) {
		page := newHarnessPage(apiURL)
		page.List.set(ctrl.ListUsers(r.Context()))
		render(w, page)
	})

	r.Post("/users/create", func(w http.ResponseWriter, r *http.Request) {
		page := newHarnessPage(apiURL)
		form := controllers.CreateForm{
			Username: r.PostFormValue("username"),
			Email:    r.PostFormValue("email"),
		}
		res := ctrl.CreateUser(r.Context(), form)
		if !res.ClearInputs {
			page.Create.Username = form.Username
			page.Create.Email = form.Email
		}
		page.Create.Out.set(res)
		render(w, page)
	})

	r.Post("/users/get", func(w http.ResponseWriter, r *http.Request) {
		page := newHarnessPage(apiURL)
		form := controllers.LookupForm{ID: r.PostFormValue("id")}
		page.Get.ID = form.ID
		page.Get.Out.set(ctrl.GetUser(r.Context(), form))
		render(w, page)
	})

	r.Post("/users/update", func(w http.ResponseWriter, r *http.Request) {
		page := newHarnessPage(apiURL)
		form := controllers.UpdateForm{
			ID:       r.PostFormValue("id"),
			Username: r.PostFormValue("username"),
			Email:    r.PostFormValue("email"),
		}
		res := ctrl.UpdateUser(r.Context(), form)
		if !res.ClearInputs {
			page.Update.ID = form.ID
			page.Update.Username = form.Username
			page.Update.Email = form.Email
		}
		page.Update.Out.set(res)
		render(w, page)
	})

	r.Post("/users/delete", func(w http.ResponseWriter, r *http.Request) {
		page := newHarnessPage(apiURL)
		form := controllers.LookupForm{ID: r.PostFormValue("id")}
		page.Delete.ID = form.ID
		page.Delete.Out.set(ctrl.DeleteUser(r.Context(), form))
		render(w, page)
	})

	return r
}
