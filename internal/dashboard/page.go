package dashboard

// indexPage is the single dashboard page. It drives /api/symbols and
// /api/analyze and hands the chart spec to the plotly renderer untouched.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Stock Dashboard</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
<style>
body { font-family: sans-serif; max-width: 1400px; margin: 0 auto; padding: 1rem; }
.card { background: #f6f8fa; border: 1px solid #e1e4e8; border-radius: 15px; padding: 1.5rem; margin: 1rem 0; }
.metric-value { font-size: 24px; font-weight: bold; color: #0366d6; }
.metric-label { font-size: 14px; color: #586069; text-transform: uppercase; }
.metrics { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
.error { color: #b00020; }
.warning { color: #8a6d00; }
</style>
</head>
<body>
<h1>&#128202; Stock Dashboard</h1>
<div class="card">
  <select id="company"></select>
  <input id="symbol" placeholder="Enter Stock Symbol (e.g., NVDA, TSLA)" style="display:none">
  <select id="period"></select>
  <button id="analyze">Analyze</button>
</div>
<div id="status"></div>
<div id="metrics" class="metrics"></div>
<div id="chart" class="card" style="display:none"></div>
<div id="overview" class="card" style="display:none"></div>
<div id="news" class="card" style="display:none"></div>
<script>
const el = id => document.getElementById(id);

async function loadSymbols() {
  const res = await fetch('/api/symbols');
  const data = await res.json();
  for (const name of data.companies.concat([data.free_text_choice])) {
    el('company').add(new Option(name, name));
  }
  for (const p of data.periods) {
    el('period').add(new Option(p, p, false, p === '1y'));
  }
  el('company').onchange = () => {
    el('symbol').style.display = el('company').value === data.free_text_choice ? '' : 'none';
  };
}

async function analyze() {
  el('status').textContent = 'Fetching data...';
  const body = {
    company: el('company').value,
    symbol: el('symbol').value,
    period: el('period').value
  };
  const res = await fetch('/api/analyze', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body)
  });
  const data = await res.json();
  if (!res.ok) {
    el('status').innerHTML = '<p class="error">' + data.error + '</p>';
    return;
  }
  el('status').innerHTML = (data.warnings || []).map(w => '<p class="warning">' + w + '</p>').join('');
  el('metrics').innerHTML = data.metrics.map(m =>
    '<div class="card"><div class="metric-value">' + m.value +
    '</div><div class="metric-label">' + m.label + '</div></div>').join('');
  if (data.chart) {
    el('chart').style.display = '';
    Plotly.newPlot('chart', data.chart.data, data.chart.layout, {responsive: true});
  } else {
    el('chart').style.display = 'none';
  }
  show('overview', 'Company Overview', data.overview);
  show('news', 'AI Summary', data.news_summary || data.news_error);
}

function show(id, title, text) {
  const node = el(id);
  if (!text) { node.style.display = 'none'; return; }
  node.style.display = '';
  node.innerHTML = '<h3>' + title + '</h3><p></p>';
  node.querySelector('p').textContent = text;
}

el('analyze').onclick = analyze;
loadSymbols();
</script>
</body>
</html>
`
