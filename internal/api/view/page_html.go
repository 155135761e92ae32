package view

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Report.Title}} {{.Report.TitleAccent}} · {{.Report.Domain}}</title>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link href="https://fonts.googleapis.com/css2?family=DM+Sans:wght@400;500;600;700&family=Playfair+Display:ital,wght@0,600;0,700;1,600&display=swap" rel="stylesheet">
<style>
:root {
  --cream: {{css .Palette.cream}};
  --cream-dark: {{css .Palette.cream_dark}};
  --warm-brown: {{css .Palette.warm_brown}};
  --warm-brown-mid: {{css .Palette.warm_brown_mid}};
  --text-sec: {{css .Palette.text_sec}};
  --text-muted: {{css .Palette.text_muted}};
  --gold: {{css .Palette.gold}};
  --gold-light: {{css .Palette.gold_light}};
  --gold-pale: {{css .Palette.gold_pale}};
  --green: {{css .Palette.green}};
  --green-light: {{css .Palette.green_light}};
  --rose: {{css .Palette.rose}};
  --blue: {{css .Palette.blue}};
  --blue-pale: {{css .Palette.blue_pale}};
  --shadow: 0 2px 20px rgba(58,46,42,0.07);
  --shadow-md: 0 6px 32px rgba(58,46,42,0.11);
  --serif: 'Playfair Display', Georgia, serif;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: 'DM Sans', sans-serif; background: var(--cream); color: var(--warm-brown); min-height: 100vh; }
strong { color: var(--warm-brown); }
.hero { background: linear-gradient(150deg, #ece5dc 0%, #f0e8df 45%, #e7ddd3 100%); padding: 52px 32px 60px; border-bottom: 1px solid rgba(120,90,60,0.07); }
.hero-inner { max-width: 920px; margin: 0 auto; display: flex; justify-content: space-between; align-items: flex-start; flex-wrap: wrap; gap: 28px; }
.brand { display: flex; align-items: center; gap: 10px; margin-bottom: 24px; font-weight: 600; font-size: 21px; letter-spacing: -0.4px; }
.brand-mark { width: 38px; height: 38px; background: var(--warm-brown); border-radius: 11px; display: flex; align-items: center; justify-content: center; }
h1 { font-family: var(--serif); font-size: 42px; font-weight: 700; line-height: 1.12; letter-spacing: -0.6px; }
h1 span { font-style: italic; color: var(--gold); }
.subtitle { margin-top: 14px; font-size: 15px; color: var(--text-sec); line-height: 1.6; max-width: 500px; }
.badges { display: flex; flex-direction: column; gap: 8px; align-items: flex-end; }
.badge { background: rgba(255,255,255,0.72); border: 1px solid rgba(120,90,60,0.1); border-radius: 20px; padding: 6px 16px; font-size: 13px; color: var(--text-sec); }
nav { position: sticky; top: 0; z-index: 40; background: rgba(244,239,233,0.92); backdrop-filter: blur(12px); border-bottom: 1px solid rgba(120,90,60,0.08); padding: 0 24px; }
nav .items { max-width: 920px; margin: 0 auto; display: flex; gap: 4px; overflow-x: auto; }
nav a { border-radius: 8px; padding: 12px 16px; font-size: 13px; font-weight: 500; color: var(--text-sec); white-space: nowrap; text-decoration: none; transition: all 0.2s; }
nav a.active { background: var(--gold-pale); color: var(--gold); }
main { max-width: 920px; margin: 0 auto; padding: 40px 28px 90px; }
.kpis { display: grid; grid-template-columns: repeat(auto-fit, minmax(175px, 1fr)); gap: 14px; margin-bottom: 38px; }
.kpi { background: #fff; border: 1px solid rgba(120,90,60,0.08); border-radius: 16px; padding: 20px 18px; box-shadow: var(--shadow); position: relative; overflow: hidden; transition: box-shadow 0.25s; }
.kpi:hover { box-shadow: var(--shadow-md); }
.kpi .accent { position: absolute; top: 0; left: 0; right: 0; height: 3px; }
.kpi .label, .eyebrow { font-size: 11px; text-transform: uppercase; letter-spacing: 0.9px; color: var(--text-muted); font-weight: 600; }
.kpi .label { margin-bottom: 8px; }
.kpi .value { font-size: 30px; font-family: var(--serif); font-weight: 700; letter-spacing: -1px; line-height: 1; }
.trend { display: inline-flex; margin-top: 10px; font-size: 13px; font-weight: 500; border-radius: 12px; padding: 3px 9px; }
.section-label { display: flex; align-items: center; gap: 10px; margin-top: 46px; }
.section-label .rule { width: 28px; height: 2.5px; background: var(--gold); border-radius: 1.5px; }
.section-label .num { font-size: 11px; letter-spacing: 2px; color: var(--text-muted); font-weight: 600; }
h2 { font-family: var(--serif); font-size: 26px; font-weight: 600; letter-spacing: -0.3px; margin-top: 8px; }
.intro { font-size: 14.5px; color: var(--text-sec); line-height: 1.7; margin: 8px 0 20px; max-width: 680px; }
.card { background: #fff; border: 1px solid rgba(120,90,60,0.08); border-radius: 18px; box-shadow: var(--shadow); margin-bottom: 18px; }
.card-head { display: flex; justify-content: space-between; align-items: center; padding: 20px 24px 12px; }
.card-title { font-family: var(--serif); font-size: 18px; font-weight: 600; }
.card-badge { font-size: 12px; font-weight: 600; color: var(--gold); background: var(--gold-pale); border-radius: 12px; padding: 4px 10px; }
table { width: 100%; border-collapse: collapse; font-size: 14px; }
th { text-align: left; font-size: 11px; text-transform: uppercase; letter-spacing: 0.8px; color: var(--text-muted); font-weight: 600; padding: 10px 24px; border-bottom: 1px solid var(--cream-dark); }
td { padding: 12px 24px; border-bottom: 1px solid var(--cream-dark); color: var(--warm-brown-mid); }
tr:last-child td { border-bottom: none; }
td.colored { font-weight: 600; }
.bars { padding: 4px 24px 22px; }
.bar-row { display: flex; align-items: center; gap: 12px; margin: 10px 0; }
.bar-label { width: 72px; text-align: right; font-size: 13px; color: var(--text-sec); font-weight: 500; flex-shrink: 0; }
.bar-track { flex: 1; height: 26px; background: var(--cream); border-radius: 7px; overflow: hidden; position: relative; }
.bar-fill { height: 100%; border-radius: 7px; display: flex; align-items: center; padding-left: 10px; }
.bar-overlay { font-size: 11px; font-weight: 600; color: #fff; white-space: nowrap; visibility: hidden; }
.revealed .bar-overlay { visibility: visible; }
.bar-pct { width: 48px; font-size: 13px; font-weight: 600; color: var(--warm-brown); flex-shrink: 0; }
.bar-total { margin-top: 14px; padding-top: 12px; border-top: 1px solid var(--cream-dark); display: flex; justify-content: space-between; font-size: 14px; font-weight: 600; }
.insight { border-radius: 14px; padding: 18px 22px; font-size: 14px; line-height: 1.65; color: var(--warm-brown-mid); margin: 18px 0; }
.insight.gold { background: var(--gold-pale); border-left: 3px solid var(--gold); }
.insight.green { background: var(--green-light); border-left: 3px solid var(--green); }
.funnel { padding: 22px 28px 26px; }
.stage { display: flex; align-items: center; gap: 16px; }
.stage-icon { width: 48px; height: 48px; border-radius: 14px; display: flex; align-items: center; justify-content: center; font-size: 20px; flex-shrink: 0; }
.stage-text { flex: 1; }
.stage-label { font-weight: 600; font-size: 15px; }
.stage-sub { font-size: 12px; color: var(--text-muted); }
.stage-values { display: flex; gap: 20px; }
.stage-value { text-align: right; }
.stage-value .v { font-family: var(--serif); font-size: 18px; font-weight: 700; line-height: 1.2; }
.stage-value .v.highlight { color: var(--gold); }
.stage-value .m { font-size: 10px; text-transform: uppercase; letter-spacing: 0.8px; color: var(--text-muted); font-weight: 600; }
.arrow { display: flex; justify-content: center; padding: 6px 0; color: var(--gold-light); }
.authority { display: grid; grid-template-columns: repeat(auto-fit, minmax(120px, 1fr)); gap: 12px; margin-top: 12px; }
.authority > div { background: #fff; border: 1px solid rgba(120,90,60,0.07); border-radius: 12px; padding: 16px 14px; text-align: center; box-shadow: var(--shadow); }
.authority .v { font-family: var(--serif); font-size: 22px; font-weight: 700; }
.authority .l { font-size: 11px; color: var(--text-muted); text-transform: uppercase; letter-spacing: 0.6px; font-weight: 500; margin-top: 4px; }
.authority .c { font-size: 12px; margin-top: 4px; font-weight: 500; }
.outlook { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 14px; }
.outlook > div { background: #fff; border: 1px solid rgba(120,90,60,0.08); border-radius: 14px; padding: 22px 20px; box-shadow: var(--shadow); }
.outlook .n { font-family: var(--serif); font-size: 30px; font-weight: 700; color: var(--gold-light); line-height: 1; margin-bottom: 10px; }
.outlook .t { font-size: 15px; font-weight: 600; margin-bottom: 8px; }
.outlook .d { font-size: 13.5px; color: var(--text-sec); line-height: 1.6; }
.bottom-line { margin-top: 30px; background: linear-gradient(140deg, #3a2e2a 0%, #5c4f47 100%); border-radius: 18px; padding: 36px 32px; }
.bottom-line .eyebrow { color: var(--gold-light); letter-spacing: 2px; margin-bottom: 12px; }
.bottom-line h3 { font-family: var(--serif); font-size: 24px; font-weight: 600; color: #fff; line-height: 1.3; letter-spacing: -0.3px; }
.bottom-line em { font-style: italic; }
.accent-gold { color: var(--gold); }
.accent-gold-light { color: var(--gold-light); }
.bottom-line p { font-size: 14px; color: rgba(255,255,255,0.6); margin-top: 14px; line-height: 1.6; max-width: 520px; }
footer { text-align: center; padding: 32px 24px 28px; border-top: 1px solid rgba(120,90,60,0.07); }
footer .brand-name { font-weight: 600; font-size: 16px; margin-bottom: 6px; }
footer p { font-size: 12px; color: var(--text-muted); }
</style>
</head>
<body>
{{- $r := .Report}}
<header class="hero">
  <div class="hero-inner">
    <div>
      <div class="brand">
        <div class="brand-mark">
          <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="#fff" stroke-width="2.4" stroke-linecap="round" stroke-linejoin="round"><path d="M12 2L4 6v6c0 5.25 3.83 10.15 8 11.25C16.17 22.15 20 17.25 20 12V6l-8-4z"/><polyline points="9 12 11 14 15 10"/></svg>
        </div>
        <span>{{$r.Brand}}</span>
      </div>
      <h1>{{$r.Title}}<br><span>{{$r.TitleAccent}}</span></h1>
      <p class="subtitle">{{$r.Subtitle}}</p>
    </div>
    <div class="badges">
      {{- range $r.Badges}}
      <div class="badge"><strong>{{.Key}}:</strong> {{.Value}}</div>
      {{- end}}
    </div>
  </div>
</header>

<nav>
  <div class="items">
    {{- range $r.Nav}}
    <a href="?section={{.Index}}#{{.Anchor}}" data-nav="{{.Index}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
    {{- end}}
  </div>
</nav>

<main>
  <div class="kpis">
    {{- range $r.KPIs}}
    <div class="kpi">
      <div class="accent" style="background: {{css .Accent}}"></div>
      <div class="label">{{.Label}}</div>
      <div class="value" id="{{.WidgetID}}" data-counter data-target="{{.Value}}" data-duration="{{.DurationMS}}" data-final="{{.Final}}">{{.Display}}</div>
      <div class="trend" style="color: {{css .TrendColor}}; background: {{css .TrendBg}}">{{.TrendText}}</div>
    </div>
    {{- end}}
  </div>

  {{- range $i, $s := $r.Sections}}
  <section id="{{$s.Anchor}}">
    <div class="section-label"><div class="rule"></div><span class="num">{{$s.Number}}</span></div>
    <h2>{{$s.Title}}</h2>
    <p class="intro">{{safe $s.IntroHTML}}</p>

    {{- if eq $i 1}}
    {{template "table" $r.Impressions}}
    <div class="card">
      <div class="card-head"><span class="card-title">{{$r.Rankings.Title}}</span><span class="card-badge">{{$r.Rankings.Badge}}</span></div>
      <div class="bars">
        {{- range $r.Rankings.Bars}}
        <div class="bar-row" id="{{.WidgetID}}" data-bar data-pct="{{percent .Percent}}" data-delay="{{.DelayMS}}" data-duration="{{.DurationMS}}">
          <span class="bar-label">{{.Label}}</span>
          <div class="bar-track">
            <div class="bar-fill" style="width: {{.Width}}%; background: {{css .Color}}">{{if .OverlayLabel}}<span class="bar-overlay">{{.OverlayLabel}}</span>{{end}}</div>
          </div>
          <span class="bar-pct">{{.PercentLabel}}</span>
        </div>
        {{- end}}
        <div class="bar-total"><span>Total Tracked</span><span>{{$r.Rankings.TotalLabel}}</span></div>
      </div>
    </div>
    {{- else if eq $i 2}}
    {{template "table" $r.Traffic}}
    {{- else if eq $i 3}}
    {{template "table" $r.MQLs}}
    {{- else if eq $i 4}}
    <div class="card">
      <div class="funnel">
        {{- $stages := len $r.Funnel.Stages}}
        {{- range $si, $stage := $r.Funnel.Stages}}
        <div class="stage">
          <div class="stage-icon" style="background: {{css $stage.Dot}}">{{$stage.Icon}}</div>
          <div class="stage-text"><div class="stage-label">{{$stage.Label}}</div><div class="stage-sub">{{$stage.Sub}}</div></div>
          <div class="stage-values">
            {{- range $stage.Values}}
            <div class="stage-value"><div class="v{{if .Highlight}} highlight{{end}}">{{.Label}}</div><div class="m">{{.Month}}</div></div>
            {{- end}}
          </div>
        </div>
        {{- if not (last $si $stages)}}
        <div class="arrow"><svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><line x1="12" y1="5" x2="12" y2="18"/><polyline points="7,13 12,18 17,13"/></svg></div>
        {{- end}}
        {{- end}}
      </div>
    </div>
    <div class="section-label"><div class="rule"></div><span class="eyebrow">Domain Authority</span></div>
    <div class="authority">
      {{- range $r.Authority}}
      <div><div class="v">{{.Value}}</div><div class="l">{{.Label}}</div><div class="c" style="color: {{css .ChangeColor}}">{{.Change}}</div></div>
      {{- end}}
    </div>
    {{- else if eq $i 5}}
    <div class="outlook">
      {{- range $r.Outlook}}
      <div><div class="n">{{.Number}}</div><div class="t">{{.Title}}</div><div class="d">{{.Description}}</div></div>
      {{- end}}
    </div>
    {{- end}}

    {{- with $s.Insight}}
    <div class="insight {{.Variant}}"><strong>{{.Label}}</strong> {{safe .TextHTML}}</div>
    {{- end}}
  </section>
  {{- end}}

  <div class="bottom-line">
    <div class="eyebrow">{{$r.BottomLine.Eyebrow}}</div>
    <h3>{{range $i, $line := $r.BottomLine.LinesHTML}}{{if $i}}<br>{{end}}{{safe $line}}{{end}}</h3>
    <p>{{$r.BottomLine.Text}}</p>
  </div>
</main>

<footer>
  <div class="brand-name">{{$r.Brand}}</div>
  <p>{{$r.Footer}}</p>
</footer>

<script>
(function () {
  var THRESHOLD = {{.RevealThreshold}};
  var OVERLAY_MIN = {{.OverlayMinPercent}};

  function formatFor(target, v) {
    if (target >= 1e6) return (v / 1e6).toFixed(2) + "M";
    if (target >= 1e3) return (v / 1e3).toFixed(1) + "K";
    return v.toLocaleString("en-US");
  }

  function onReveal(el, fn) {
    if (!("IntersectionObserver" in window)) { fn(); return; }
    var obs = new IntersectionObserver(function (entries) {
      entries.forEach(function (e) {
        if (e.isIntersecting && e.intersectionRatio >= THRESHOLD) {
          obs.disconnect();
          fn();
        }
      });
    }, { threshold: THRESHOLD });
    obs.observe(el);
  }

  document.querySelectorAll("[data-counter]").forEach(function (el) {
    var target = +el.dataset.target;
    var duration = +el.dataset.duration;
    onReveal(el, function () {
      if (target <= 0) { el.textContent = el.dataset.final; return; }
      var start = null;
      function step(now) {
        if (start === null) start = now;
        var p = Math.min((now - start) / duration, 1);
        var eased = 1 - Math.pow(1 - p, 3);
        el.textContent = formatFor(target, Math.round(target * eased));
        if (p < 1) requestAnimationFrame(step);
      }
      requestAnimationFrame(step);
    });
  });

  document.querySelectorAll("[data-bar]").forEach(function (el) {
    var fill = el.querySelector(".bar-fill");
    onReveal(el, function () {
      if (+el.dataset.pct > OVERLAY_MIN) el.classList.add("revealed");
      fill.style.transition = "width " + el.dataset.duration + "ms cubic-bezier(0.22, 1, 0.36, 1) " + el.dataset.delay + "ms";
      requestAnimationFrame(function () { fill.style.width = el.dataset.pct + "%"; });
    });
  });

  document.querySelectorAll("[data-nav]").forEach(function (a) {
    a.addEventListener("click", function () {
      document.querySelectorAll("[data-nav]").forEach(function (b) { b.classList.remove("active"); });
      a.classList.add("active");
    });
  });
})();
</script>
</body>
</html>
{{define "table"}}
<div class="card">
  <div class="card-head"><span class="card-title">{{.Title}}</span><span class="card-badge">{{.Badge}}</span></div>
  <table>
    <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
    <tbody>
      {{- range .Rows}}
      <tr>{{range .Cells}}{{if .Color}}<td class="colored" style="color: {{css .Color}}">{{.Label}}</td>{{else}}<td>{{.Label}}</td>{{end}}{{end}}</tr>
      {{- end}}
    </tbody>
  </table>
</div>
{{end}}`
