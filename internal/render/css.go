package render

// StyleCSS is the stylesheet written alongside the HTML artifact.
const StyleCSS = `/* AI Fitness Coach - Training Plan Styles */
body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    margin: 0;
    padding: 20px;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
    color: #333;
}

.plan-header {
    background: white;
    padding: 30px;
    border-radius: 15px;
    box-shadow: 0 10px 30px rgba(0,0,0,0.1);
    margin-bottom: 30px;
    text-align: center;
}

.plan-header h1 {
    color: #2c3e50;
    margin: 0 0 20px 0;
    font-size: 2.5em;
    font-weight: 700;
}

.plan-feedback {
    background: #e8f5e8;
    padding: 15px;
    border-radius: 8px;
    margin: 15px 0;
    font-style: italic;
    border-left: 4px solid #27ae60;
}

.plan-supplements {
    background: #fff3cd;
    padding: 15px;
    border-radius: 8px;
    margin: 15px 0;
    border-left: 4px solid #ffc107;
}

.week-grid {
    display: grid;
    gap: 25px;
}

.week {
    background: white;
    border-radius: 15px;
    padding: 25px;
    box-shadow: 0 8px 25px rgba(0,0,0,0.1);
    transition: transform 0.3s ease;
}

.week:hover {
    transform: translateY(-5px);
}

.week h2 {
    color: #2c3e50;
    border-bottom: 3px solid #3498db;
    padding-bottom: 10px;
    margin-bottom: 20px;
    font-size: 1.8em;
}

.day {
    margin: 20px 0;
    padding: 20px;
    background: #f8f9fa;
    border-radius: 10px;
    border-left: 5px solid #3498db;
}

.day-title {
    font-weight: bold;
    font-size: 1.2em;
    color: #2c3e50;
    margin-bottom: 10px;
}

.details {
    margin: 10px 0;
    line-height: 1.6;
    color: #555;
}

.meal_plan {
    background: #f0f8ff;
    padding: 15px;
    border-radius: 8px;
    margin-top: 15px;
    border: 1px solid #ddd;
}

.meal_plan h4 {
    color: #2c3e50;
    margin: 0 0 10px 0;
    font-size: 1.1em;
}

.meal_plan ul {
    list-style: none;
    padding: 0;
    margin: 0;
}

.meal_plan li {
    padding: 8px 0;
    border-bottom: 1px solid #eee;
}

.meal_plan li:last-child {
    border-bottom: none;
}

.meal_plan strong {
    color: #27ae60;
}

/* Responsive design */
@media (max-width: 768px) {
    body {
        padding: 10px;
    }

    .plan-header h1 {
        font-size: 2em;
    }

    .week {
        padding: 15px;
    }

    .day {
        padding: 15px;
    }
}
`
