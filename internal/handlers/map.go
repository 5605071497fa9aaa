package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MapPageHandler serves the embedded map view that polls the freshness
// endpoint.
func MapPageHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(mapHTML))
}

const mapHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Monitoreo GPS de Brigadas</title>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
  <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
  <style>
    body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; }
    #map { height: 100vh; }
    .badge { position: absolute; top: 10px; right: 10px; z-index: 1000;
             background: #fff; padding: 6px 12px; border-radius: 6px;
             box-shadow: 0 1px 4px rgba(0,0,0,.3); font-size: 14px; }
  </style>
</head>
<body>
  <div id="map"></div>
  <div class="badge">Brigadas activas: <span id="count">0</span></div>

  <script>
    const map = L.map('map').setView([-12.0464, -77.0428], 12);
    L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
      attribution: '&copy; OpenStreetMap contributors'
    }).addTo(map);

    let markers = [];

    async function refresh() {
      try {
        const res = await fetch('/api/ubicaciones');
        if (!res.ok) return;
        const rows = await res.json();

        markers.forEach(m => map.removeLayer(m));
        markers = [];

        for (const r of rows) {
          const label = (r.tecnico || r.usuario || r.telefono) +
            (r.brigada ? ' — ' + r.brigada : '') +
            '<br>Hace ' + r.minutos_transcurridos + ' min (' + r.estado + ')';
          const m = L.marker([r.latitud, r.longitud]).addTo(map).bindPopup(label);
          markers.push(m);
        }

        document.getElementById('count').textContent = rows.length;
      } catch (e) {
        // next poll retries
      }
    }

    refresh();
    setInterval(refresh, 15000);
  </script>
</body>
</html>
`
