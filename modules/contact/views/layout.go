package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ecotech/contactform/handler"
	"github.com/ecotech/contactform/modules/contact"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// toastScript dismisses toasts after their data-timeout and on the close button.
const toastScript = `<script>
(function () {
  function arm(t) {
    if (t.dataset.armed) return;
    t.dataset.armed = "1";
    var remove = function () { t.remove(); };
    var b = t.querySelector("button");
    if (b) b.addEventListener("click", remove);
    setTimeout(remove, parseInt(t.dataset.timeout, 10) || 3500);
  }
  function scan() { document.querySelectorAll(".toast[data-timeout]").forEach(arm); }
  new MutationObserver(scan).observe(document.body, { childList: true, subtree: true });
  scan();
})();
</script>`

func layout(siteName, title string, nav []contact.NavLink, current string, year int, main, toasts templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<!doctype html><html lang="pt-BR"><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>`)
		m.text(title + " | " + siteName)
		m.raw(`</title>`)
		m.rawf(`<script type="module" src="%s"></script>`, datastarScript)
		m.raw(`</head><body>`)

		m.raw(`<header class="site-header"><a class="brand" href="index.html">`)
		m.text(siteName)
		m.raw(`</a>`)
		m.raw(`<button class="nav-toggle" type="button" aria-controls="site-nav" aria-expanded="false" aria-label="Abrir menu"`)
		m.raw(` data-signals:navopen="false" data-on:click="$navopen = !$navopen" data-attr:aria-expanded="$navopen">☰</button>`)
		m.raw(`<nav id="site-nav" data-class:open="$navopen">`)
		navList(m, nav, current)
		m.raw(`</nav></header>`)

		m.raw(`<main>`)
		m.render(ctx, main)
		m.raw(`</main>`)

		m.raw(`<div id="toast-container">`)
		if toasts != nil {
			m.render(ctx, toasts)
		}
		m.raw(`</div>`)

		m.raw(`<footer class="site-footer"><nav class="footer-nav">`)
		navList(m, nav, current)
		m.raw(`</nav><p>© <span id="ano">`)
		m.raw(strconv.Itoa(year))
		m.raw(`</span> `)
		m.text(siteName)
		m.raw(`</p></footer>`)
		m.raw(toastScript)
		m.raw(`</body></html>`)
	})
}

func navList(m *markup, nav []contact.NavLink, current string) {
	m.raw(`<ul>`)
	for _, link := range nav {
		m.raw(`<li><a`)
		m.attr("href", link.Href)
		if link.Href == current {
			m.raw(` aria-current="page"`)
		}
		m.raw(`>`)
		m.text(link.Label)
		m.raw(`</a></li>`)
	}
	m.raw(`</ul>`)
}

// Page renders the full contact page.
func Page(p contact.PageParams) templ.Component {
	main := component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="contato"><h1>Fale conosco</h1>`)
		m.raw(`<p>Preencha o formulário e retornaremos o quanto antes.</p>`)
		m.render(ctx, Form(p.Form))
		m.render(ctx, Preview(contact.PreviewParams{}))
		m.raw(`</section>`)
	})

	var toasts templ.Component
	if len(p.Toasts) > 0 {
		toasts = component(func(ctx context.Context, m *markup) {
			for _, t := range p.Toasts {
				m.render(ctx, Toast(t))
			}
		})
	}

	return layout(p.SiteName, "Contato", p.Nav, p.CurrentPage, p.Year, main, toasts)
}

// ErrorPage renders a standalone error page for handler.NewErrorHandler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<!doctype html><html lang="pt-BR"><head><meta charset="utf-8"><title>Erro `)
		m.raw(strconv.Itoa(p.StatusCode))
		m.raw(`</title></head><body><main class="erro-pagina"><h1>Algo deu errado</h1><p>`)
		m.text(errorText(p.StatusCode, p.Error))
		m.raw(`</p>`)
		if p.Detail != "" {
			m.raw(`<pre>`)
			m.text(p.Detail)
			m.raw(`</pre>`)
		}
		if p.RequestID != "" {
			m.raw(`<p class="request-id">Código: `)
			m.text(p.RequestID)
			m.raw(`</p>`)
		}
		if p.RetryURL != "" {
			m.raw(`<a`)
			m.attr("href", p.RetryURL)
			m.raw(`>Tentar novamente</a>`)
		}
		m.raw(`</main></body></html>`)
	})
}

// errorText turns a status into a visitor-facing sentence; fallback is
// used for statuses without one.
func errorText(status int, fallback string) string {
	switch status {
	case 400:
		return "Não foi possível ler os dados enviados."
	case 404:
		return "Página não encontrada."
	case 415:
		return "Formato de envio não suportado."
	case 422:
		return contact.StatusInvalid
	case 429:
		return "Muitas tentativas em pouco tempo. Aguarde um instante e tente novamente."
	case 503:
		return contact.StatusFailed
	}
	if status >= 500 {
		return "Erro interno. Tente novamente mais tarde."
	}
	return fallback
}
