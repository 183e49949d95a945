package live

// demoPage is the embedded demo client. It renders the server's patch
// stream verbatim: no transition logic lives in the browser.
const demoPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>glide demo</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 32rem; margin: 3rem auto; }
  ul { list-style: none; padding: 0; }
  li { padding: .6rem 1rem; margin: .3rem 0; background: #eef; border-radius: 6px; cursor: pointer; }
  .fade-enter { opacity: 0; }
  .fade-enter-active { opacity: 1; transition: opacity .3s ease-in; }
  .fade-leave { opacity: 1; }
  .fade-leave-active { opacity: 0; transition: opacity .3s ease-out; }
</style>
</head>
<body>
<h1>glide</h1>
<p>Click "Add" to insert an item, click an item to remove it. Every class
you see flicker is applied by the server.</p>
<button id="add">Add</button>
<ul id="list"></ul>
<script>
  const proto = location.protocol === "https:" ? "wss" : "ws";
  const ws = new WebSocket(proto + "://" + location.host + "/ws");
  const list = document.getElementById("list");

  ws.onmessage = (e) => {
    const p = JSON.parse(e.data);
    if (p.op === "insert") {
      const li = document.createElement("li");
      li.id = p.id;
      li.textContent = p.value;
      li.onclick = () => ws.send(JSON.stringify({action: "remove", id: p.id}));
      list.appendChild(li);
      return;
    }
    const el = document.getElementById(p.id);
    if (!el) return;
    if (p.op === "class-add") el.classList.add(p.value);
    else if (p.op === "class-remove") el.classList.remove(p.value);
    else if (p.op === "remove") el.remove();
  };

  document.getElementById("add").onclick =
    () => ws.send(JSON.stringify({action: "add"}));
</script>
</body>
</html>
`
