package clients

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate -f page.templ

// pageStyles va inline en el <head> de Page.
const pageStyles = `
body{margin:0;min-height:100vh;background:#B8D8D8;font-family:system-ui,sans-serif;color:#4A6B6B}
main{max-width:42rem;margin:0 auto;padding:1.5rem}
h1{font-size:2.25rem;text-align:center;margin-bottom:2rem}
h2{text-align:center}
.search{display:flex;margin-bottom:1rem}
.search input{flex:1;background:#D4EDED;border:2px solid #A8C5C5;border-radius:.5rem;padding:1rem;color:#4A6B6B}
.note{font-size:.875rem;color:#7A9B9B;text-align:center;margin-bottom:1.5rem}
.grid{display:grid;grid-template-columns:1fr 1fr;gap:1rem;margin-bottom:1.5rem}
.tile{background:#D4EDED;border-radius:.5rem;aspect-ratio:1;display:flex;flex-direction:column;align-items:center;justify-content:center;font-size:3.75rem;text-decoration:none;color:inherit}
.tile small{font-size:1rem;text-transform:capitalize}
.tile.selected{outline:4px solid #8AB5B5}
.btn{display:block;width:100%;text-align:center;background:#8AB5B5;color:#fff;font-weight:600;padding:1rem 0;border:0;border-radius:.5rem;text-decoration:none;cursor:pointer}
.btn.secondary{background:#A8C5C5}
.btn[disabled]{opacity:.5;cursor:not-allowed}
.actions{display:flex;gap:.75rem}
.notice{font-size:.75rem;color:#7A9B9B;text-align:center;margin-top:2rem}
.overlay{position:fixed;inset:0;background:rgba(0,0,0,.5);display:flex;align-items:center;justify-content:center;padding:1rem}
.modal{background:#B8D8D8;border-radius:.5rem;padding:2rem;max-width:28rem;width:100%}
.error{background:#F8D7DA;color:#842029;border-radius:.5rem;padding:.75rem;margin-bottom:1rem;text-align:center}
`
