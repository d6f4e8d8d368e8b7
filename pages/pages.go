package pages

var Index = `
<!DOCTYPE html>
<html>
<head>
    <title>songsnap</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        #result {
            white-space: pre-wrap;
            word-wrap: break-word;
        }
    </style>
</head>
<body>
    <h1>What's playing?</h1>
    <p>Upload a short audio clip and we'll try to name the track.</p>
    <form id="upload">
        <input type="file" name="file" accept="audio/*" required>
        <button type="submit">Recognize</button>
    </form>
    <pre id="result"></pre>
    <script>
        document.getElementById('upload').addEventListener('submit', async (e) => {
            e.preventDefault();
            const result = document.getElementById('result');
            result.textContent = 'Listening...';
            const data = new FormData(e.target);
            try {
                const resp = await fetch('/recognize', { method: 'POST', body: data });
                const body = await resp.json();
                result.textContent = JSON.stringify(body, null, 2);
            } catch (err) {
                result.textContent = 'Request failed: ' + err;
            }
        });
    </script>
</body>
</html>`
