package dev

// ClientScript is the browser side of the reload protocol. The dev server
// appends it to the pages it serves.
const ClientScript = `(function () {
  "use strict";
  var delay = 1000;
  var maxDelay = 30000;
  var overlayID = "elt-error-overlay";

  function connect() {
    var scheme = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(scheme + "//" + location.host + "` + ReloadPath + `");

    ws.onopen = function () {
      delay = 1000;
      clearOverlay();
    };
    ws.onmessage = function (e) {
      var msg;
      try {
        msg = JSON.parse(e.data);
      } catch (err) {
        return;
      }
      switch (msg.type) {
      case "reload":
        location.reload();
        break;
      case "css":
        reloadCSS();
        break;
      case "error":
        showOverlay(msg.error);
        break;
      case "clear":
        clearOverlay();
        break;
      }
    };
    ws.onclose = function () {
      setTimeout(function () {
        delay = Math.min(delay * 2, maxDelay);
        connect();
      }, delay);
    };
    ws.onerror = function () {
      ws.close();
    };
  }

  function reloadCSS() {
    document.querySelectorAll('link[rel="stylesheet"]').forEach(function (link) {
      var url = new URL(link.href);
      url.searchParams.set("_reload", Date.now());
      link.href = url.toString();
    });
  }

  function showOverlay(text) {
    clearOverlay();
    var overlay = document.createElement("div");
    overlay.id = overlayID;
    overlay.style.cssText = "position:fixed;inset:0;background:rgba(0,0,0,.9);color:#fff;font:14px monospace;padding:20px;overflow:auto;z-index:999999";
    var title = document.createElement("h2");
    title.style.color = "#ff5555";
    title.textContent = "Build failed";
    var pre = document.createElement("pre");
    pre.style.whiteSpace = "pre-wrap";
    pre.textContent = text;
    overlay.appendChild(title);
    overlay.appendChild(pre);
    document.body.appendChild(overlay);
  }

  function clearOverlay() {
    var overlay = document.getElementById(overlayID);
    if (overlay) {
      overlay.remove();
    }
  }

  connect();
})();`
