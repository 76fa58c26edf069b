package http

import "net/http"

// landingPage is the inline landing page served at the root. It is a
// thin client over /api/vehicle-info.
const landingPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width,initial-scale=1"/>
  <title>RC Lookup — Fast Vehicle Info</title>
  <meta name="description" content="RC lookup tool. Fetch vehicle details instantly."/>
</head>
<body>
  <main>
    <h1>RC Lookup</h1>
    <p>Type an RC number and get details in seconds.</p>
    <label for="rc">Enter RC Number</label>
    <input id="rc" placeholder="e.g. DL01AB1234"/>
    <button id="go">Search</button>
    <p id="msg"></p>
    <pre id="out"></pre>
    <footer>
      <p><a href="/api/vehicle-info?rc=DL01AB1234">API example</a></p>
    </footer>
  </main>
  <script>
    const rcEl = document.getElementById('rc');
    const goEl = document.getElementById('go');
    const msgEl = document.getElementById('msg');
    const outEl = document.getElementById('out');

    async function fetchRc() {
      const rc = rcEl.value.trim();
      if (!rc) { msgEl.textContent = "Please enter a valid RC number."; return; }
      msgEl.textContent = "Fetching…";
      outEl.textContent = "";
      try {
        const res = await fetch('/api/vehicle-info?rc=' + encodeURIComponent(rc));
        const data = await res.json();
        msgEl.textContent = res.ok ? "Done." : "Failed to fetch.";
        outEl.textContent = JSON.stringify(data, null, 2);
      } catch (e) {
        msgEl.textContent = "Network error.";
        outEl.textContent = String(e);
      }
    }
    goEl.addEventListener('click', fetchRc);
    rcEl.addEventListener('keydown', (e) => { if (e.key === 'Enter') fetchRc(); });
  </script>
</body>
</html>`

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(landingPage))
}
