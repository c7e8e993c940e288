package dashboard

// pageHTML es la página completa del tablero: HTML embebido que consume la API
// JSON desde el navegador y dibuja con Chart.js (más el plugin de boxplot).
// Sin motor de templates: la página es estática y los datos llegan por fetch.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Elderly Health Monitor</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <script src="https://cdn.jsdelivr.net/npm/@sgratzl/chartjs-chart-boxplot"></script>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
        .header { background: #2c3e50; color: white; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
        .header h1 { margin: 0; }
        .section { color: #2c3e50; margin: 30px 0 10px; }
        .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
        .metrics { display: grid; grid-template-columns: repeat(4, 1fr); gap: 20px; }
        .card { background: white; padding: 20px; border-radius: 5px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .metric-value { font-size: 2em; font-weight: bold; color: #3498db; }
        .metric-label { color: #7f8c8d; margin-bottom: 10px; }
        .chart-container { position: relative; height: 300px; }
        .chart-title { text-align: center; font-weight: bold; color: #666; margin-bottom: 8px; }
        .profile-row { padding: 4px 0; }
        .medication-table { width: 100%; border-collapse: collapse; }
        .medication-table th, .medication-table td { text-align: left; padding: 8px; border-bottom: 1px solid #ecf0f1; }
        .medication-table th { background: #ecf0f1; }
        .matrix-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 4px; }
        .matrix-cell { position: relative; height: 70px; }
        .error-banner { display: none; background: #e74c3c; color: white; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .footer { margin-top: 40px; padding-top: 10px; border-top: 1px solid #bdc3c7; color: #7f8c8d; font-style: italic; }
    </style>
</head>
<body>
    <div class="header">
        <h1>&#129658; Elderly Patient Health Dashboard</h1>
    </div>

    <div id="error-banner" class="error-banner"></div>

    <h2 class="section">&#128100; Patient Profile</h2>
    <div class="card">
        <div id="profile-rows"></div>
    </div>

    <h2 class="section">&#128308; Real-time Vitals</h2>
    <div class="metrics">
        <div class="card">
            <div class="metric-label">Heart Rate</div>
            <div class="metric-value" id="hr-value">-- BPM</div>
        </div>
        <div class="card">
            <div class="metric-label">Blood Pressure</div>
            <div class="metric-value" id="bp-value">--/-- mmHg</div>
        </div>
        <div class="card">
            <div class="metric-label">SpO2</div>
            <div class="metric-value" id="spo2-value">-- %</div>
        </div>
        <div class="card">
            <div class="metric-label">Temperature</div>
            <div class="metric-value" id="temp-value">-- &deg;F</div>
        </div>
    </div>

    <h2 class="section">&#128203; Medical History</h2>
    <div class="card">
        <div class="chart-container">
            <canvas id="conditions-pie"></canvas>
        </div>
    </div>

    <h2 class="section">&#128138; Medication Schedule</h2>
    <div class="card">
        <table class="medication-table">
            <thead>
                <tr><th>Medicine</th><th>Dosage</th><th>Time</th></tr>
            </thead>
            <tbody id="medication-rows"></tbody>
        </table>
    </div>

    <h2 class="section">&#128200; Vitals Trend (Last 24 Hours)</h2>
    <div class="grid">
        <div class="card"><div class="chart-container"><canvas id="hr-line"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="bp-line"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="spo2-line"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="temp-line"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="hr-bar"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="temp-area"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="bp-scatter"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="hr-hist"></canvas></div></div>
        <div class="card"><div class="chart-container"><canvas id="temp-box"></canvas></div></div>
        <div class="card">
            <div class="chart-title">Vitals Scatter Matrix</div>
            <div id="scatter-matrix" class="matrix-grid"></div>
        </div>
    </div>

    <div class="footer">&#128105;&#8205;&#9877;&#65039; Developed for remote elderly patient health tracking.</div>

    <script>
        Chart.register(ChartBoxPlot.BoxPlotController, ChartBoxPlot.BoxAndWiskers);

        async function fetchJSON(path) {
            const resp = await fetch(path);
            if (!resp.ok) {
                const text = await resp.text();
                throw new Error(text.trim() || (resp.status + ' ' + resp.statusText));
            }
            return resp.json();
        }

        function showError(err) {
            const banner = document.getElementById('error-banner');
            banner.textContent = 'Data Error: ' + (err && err.message ? err.message : err);
            banner.style.display = 'block';
        }

        function baseOptions(title) {
            return {
                responsive: true,
                maintainAspectRatio: false,
                animation: false,
                plugins: {
                    title: { display: true, text: title },
                    legend: { display: false }
                }
            };
        }

        function bins(values, width) {
            const lo = Math.floor(Math.min.apply(null, values) / width) * width;
            let hi = Math.ceil(Math.max.apply(null, values) / width) * width;
            if (hi === lo) {
                hi = lo + width;
            }
            const labels = [];
            const counts = [];
            for (let edge = lo; edge < hi; edge += width) {
                labels.push(edge.toFixed(0) + '-' + (edge + width).toFixed(0));
                counts.push(0);
            }
            values.forEach(function (v) {
                let idx = Math.floor((v - lo) / width);
                if (idx >= counts.length) {
                    idx = counts.length - 1;
                }
                counts[idx]++;
            });
            return { labels: labels, counts: counts };
        }

        function spo2Color(v) {
            const t = Math.max(0, Math.min(1, (v - 95) / 5));
            return 'hsl(' + Math.round(240 * t) + ', 70%, 50%)';
        }

        async function loadProfile() {
            const p = await fetchJSON('/api/v1/patient');
            const rows = [
                ['Name', p.name],
                ['Age', p.age],
                ['Gender', p.gender],
                ['Blood Group', p.blood_group],
                ['Allergies', p.allergies],
                ['Emergency Contact', p.emergency_contact],
                ['Address', p.address],
                ['Assigned Doctor', p.assigned_doctor]
            ];
            const panel = document.getElementById('profile-rows');
            panel.innerHTML = '';
            rows.forEach(function (row) {
                const div = document.createElement('div');
                div.className = 'profile-row';
                const label = document.createElement('strong');
                label.textContent = row[0] + ': ';
                div.appendChild(label);
                div.appendChild(document.createTextNode(row[1]));
                panel.appendChild(div);
            });
        }

        async function loadLatest() {
            const v = await fetchJSON('/api/v1/vitals/latest');
            document.getElementById('hr-value').textContent = v.heart_rate.toFixed(1) + ' BPM';
            document.getElementById('bp-value').textContent = v.systolic.toFixed(1) + '/' + v.diastolic.toFixed(1) + ' mmHg';
            document.getElementById('spo2-value').textContent = v.spo2.toFixed(1) + ' %';
            document.getElementById('temp-value').textContent = v.temperature_f.toFixed(1) + ' °F';
        }

        async function loadConditions() {
            const conditions = await fetchJSON('/api/v1/patient/conditions');
            const present = conditions.filter(function (c) { return c.present; });
            new Chart(document.getElementById('conditions-pie'), {
                type: 'pie',
                data: {
                    labels: present.map(function (c) { return c.name; }),
                    datasets: [{
                        data: present.map(function () { return 1; }),
                        backgroundColor: ['#3498db', '#e74c3c', '#2ecc71', '#f39c12', '#9b59b6', '#1abc9c']
                    }]
                },
                options: {
                    responsive: true,
                    maintainAspectRatio: false,
                    plugins: { title: { display: true, text: 'Existing Medical Conditions' } }
                }
            });
        }

        async function loadMedications() {
            const meds = await fetchJSON('/api/v1/patient/medications');
            const body = document.getElementById('medication-rows');
            body.innerHTML = '';
            meds.forEach(function (m) {
                const tr = document.createElement('tr');
                [m.name, m.dosage, m.time].forEach(function (cell) {
                    const td = document.createElement('td');
                    td.textContent = cell;
                    tr.appendChild(td);
                });
                body.appendChild(tr);
            });
        }

        function scatterMatrix(samples) {
            const dims = [
                { key: 'heart_rate', label: 'HR' },
                { key: 'systolic', label: 'Sys' },
                { key: 'diastolic', label: 'Dia' },
                { key: 'spo2', label: 'SpO2' }
            ];
            const grid = document.getElementById('scatter-matrix');
            grid.innerHTML = '';
            dims.forEach(function (rowDim, i) {
                dims.forEach(function (colDim, j) {
                    const cell = document.createElement('div');
                    cell.className = 'matrix-cell';
                    const canvas = document.createElement('canvas');
                    cell.appendChild(canvas);
                    grid.appendChild(cell);
                    new Chart(canvas, {
                        type: 'scatter',
                        data: {
                            datasets: [{
                                data: samples.map(function (s) { return { x: s[colDim.key], y: s[rowDim.key] }; }),
                                backgroundColor: '#3498db',
                                pointRadius: 2
                            }]
                        },
                        options: {
                            responsive: true,
                            maintainAspectRatio: false,
                            animation: false,
                            plugins: { legend: { display: false } },
                            scales: {
                                x: {
                                    ticks: { display: false },
                                    title: { display: i === dims.length - 1, text: colDim.label, font: { size: 9 } }
                                },
                                y: {
                                    ticks: { display: false },
                                    title: { display: j === 0, text: rowDim.label, font: { size: 9 } }
                                }
                            }
                        }
                    });
                });
            });
        }

        async function loadTrends() {
            const series = await fetchJSON('/api/v1/vitals');
            const samples = series.samples;
            const labels = samples.map(function (s) {
                return new Date(s.timestamp).toLocaleTimeString([], { hour: '2-digit', minute: '2-digit' });
            });
            const hr = samples.map(function (s) { return s.heart_rate; });
            const sys = samples.map(function (s) { return s.systolic; });
            const dia = samples.map(function (s) { return s.diastolic; });
            const spo2 = samples.map(function (s) { return s.spo2; });
            const temp = samples.map(function (s) { return s.temperature_f; });

            new Chart(document.getElementById('hr-line'), {
                type: 'line',
                data: {
                    labels: labels,
                    datasets: [{ label: 'Heart Rate (BPM)', data: hr, borderColor: '#e74c3c', pointRadius: 3 }]
                },
                options: baseOptions('Heart Rate Over Time')
            });

            const bpOptions = baseOptions('Blood Pressure Over Time');
            bpOptions.plugins.legend.display = true;
            new Chart(document.getElementById('bp-line'), {
                type: 'line',
                data: {
                    labels: labels,
                    datasets: [
                        { label: 'Systolic BP (mmHg)', data: sys, borderColor: '#3498db', pointRadius: 3 },
                        { label: 'Diastolic BP (mmHg)', data: dia, borderColor: '#9b59b6', pointRadius: 3 }
                    ]
                },
                options: bpOptions
            });

            new Chart(document.getElementById('spo2-line'), {
                type: 'line',
                data: {
                    labels: labels,
                    datasets: [{ label: 'SpO2 (%)', data: spo2, borderColor: '#2ecc71', pointRadius: 3 }]
                },
                options: baseOptions('SpO2 Over Time')
            });

            new Chart(document.getElementById('temp-line'), {
                type: 'line',
                data: {
                    labels: labels,
                    datasets: [{ label: 'Temperature (F)', data: temp, borderColor: '#f39c12', pointRadius: 3 }]
                },
                options: baseOptions('Body Temperature Over Time')
            });

            new Chart(document.getElementById('hr-bar'), {
                type: 'bar',
                data: {
                    labels: labels,
                    datasets: [{ label: 'Heart Rate (BPM)', data: hr, backgroundColor: '#e74c3c' }]
                },
                options: baseOptions('Heart Rate Distribution')
            });

            new Chart(document.getElementById('temp-area'), {
                type: 'line',
                data: {
                    labels: labels,
                    datasets: [{
                        label: 'Temperature (F)',
                        data: temp,
                        borderColor: '#f39c12',
                        backgroundColor: 'rgba(243, 156, 18, 0.3)',
                        fill: true,
                        pointRadius: 0
                    }]
                },
                options: baseOptions('Temperature Area Chart')
            });

            new Chart(document.getElementById('bp-scatter'), {
                type: 'bubble',
                data: {
                    datasets: [{
                        label: 'Blood Pressure',
                        data: samples.map(function (s) {
                            return { x: s.systolic, y: s.diastolic, r: Math.max(2, (s.heart_rate - 55) / 5) };
                        }),
                        backgroundColor: spo2.map(spo2Color)
                    }]
                },
                options: baseOptions('Blood Pressure Scatter Plot')
            });

            const hrBins = bins(hr, 2);
            const histOptions = baseOptions('Heart Rate Histogram');
            histOptions.scales = { x: { grid: { display: false } } };
            new Chart(document.getElementById('hr-hist'), {
                type: 'bar',
                data: {
                    labels: hrBins.labels,
                    datasets: [{
                        label: 'Count',
                        data: hrBins.counts,
                        backgroundColor: '#3498db',
                        barPercentage: 1.0,
                        categoryPercentage: 1.0
                    }]
                },
                options: histOptions
            });

            new Chart(document.getElementById('temp-box'), {
                type: 'boxplot',
                data: {
                    labels: ['Temperature (F)'],
                    datasets: [{
                        label: 'Temperature (F)',
                        data: [temp],
                        backgroundColor: 'rgba(243, 156, 18, 0.5)',
                        borderColor: '#f39c12'
                    }]
                },
                options: baseOptions('Temperature Box Plot')
            });

            scatterMatrix(samples);
        }

        loadProfile().catch(showError);
        loadLatest().catch(showError);
        loadConditions().catch(showError);
        loadMedications().catch(showError);
        loadTrends().catch(showError);
    </script>
</body>
</html>
`
